package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/errors"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

// Dispatcher acts on classified commands. Param actions mutate only the
// parameter store; user commands go through the Runner, gated on the
// user-command allow-list from the master info.
type Dispatcher struct {
	res     *resolver.Resolver
	store   *ParamStore
	runner  Runner
	timeout time.Duration
}

// New creates a dispatcher. timeout bounds each exec-class command run;
// zero disables the bound.
func New(res *resolver.Resolver, runner Runner, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		res:     res,
		store:   NewParamStore(res.Spec(), res.MasterInfo()),
		runner:  runner,
		timeout: timeout,
	}
}

// Store exposes the parameter store, mainly for tests.
func (d *Dispatcher) Store() *ParamStore { return d.store }

// RunParam validates and applies one param command invocation
// (args = [action, ...]). The boolean reports user-input validity; the
// string is either the action's result or the diagnostic. Invalid input
// never returns an error.
func (d *Dispatcher) RunParam(cmd string, args []string) (string, bool) {
	ok, diag := d.res.ValidateParamCommand(cmd, args)
	if !ok {
		return diag, false
	}

	// Validation guarantees a known action with correct arity.
	action, _ := resolver.ParseAction(args[0])
	switch action {
	case resolver.ActionSet:
		if err := d.store.Set(cmd, args[1], args[2]); err != nil {
			return err.Error(), false
		}
		return fmt.Sprintf("%s.%s = %s", cmd, args[1], args[2]), true
	case resolver.ActionGet:
		value, err := d.store.Get(cmd, args[1])
		if err != nil {
			return err.Error(), false
		}
		return fmt.Sprintf("%s.%s = %s", cmd, args[1], value), true
	default:
		if err := d.store.Reset(cmd, args[1]); err != nil {
			return err.Error(), false
		}
		return fmt.Sprintf("%s.%s reset to default", cmd, args[1]), true
	}
}

// RunUser executes a user command. Exec-class commands must be on the
// allow-list and run through the Runner; info-class commands only report
// their title.
func (d *Dispatcher) RunUser(ctx context.Context, name string) (string, error) {
	uc, ok := d.res.Spec().UserCommand(name)
	if !ok {
		return "", &resolver.UnknownCommandError{Name: name}
	}

	if uc.Class != spec.ClassExec {
		return uc.Title, nil
	}

	if !d.res.MasterInfo().HasUserCommand(name) {
		return "", errors.CommandNotAllowed(name)
	}

	runCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	if err := d.runner.Run(runCtx, name); err != nil {
		return "", fmt.Errorf("command %q failed: %w", name, err)
	}
	return "", nil
}
