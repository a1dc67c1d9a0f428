// Package shell implements the interactive session: a prompt/read loop
// over a resolved specification, plus a watcher that notices when the
// spec file changes on disk. A resolver is terminal once derived, so the
// watcher only advises a restart; it never reloads in place.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	shellwords "github.com/mattn/go-shellwords"
	"golang.org/x/sync/errgroup"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/dispatch"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/history"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/output"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

// Session is one interactive shell run over a resolved specification.
type Session struct {
	// ID identifies the session in history entries.
	ID string

	res    *resolver.Resolver
	disp   *dispatch.Dispatcher
	hist   *history.Writer
	prompt string

	in  io.Reader
	out io.Writer

	// specPath, when set, is watched for on-disk changes.
	specPath string
}

// Options configures a session.
type Options struct {
	// Prompt overrides the specification's prompt when non-empty.
	Prompt string
	// SpecPath enables the change watcher when non-empty.
	SpecPath string
	// History receives one entry per command when non-nil.
	History *history.Writer
}

// New creates a session reading from in and writing to out.
func New(res *resolver.Resolver, disp *dispatch.Dispatcher, in io.Reader, out io.Writer, opts Options) *Session {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = res.Spec().Prompt
	}
	return &Session{
		ID:       uuid.NewString(),
		res:      res,
		disp:     disp,
		hist:     opts.History,
		prompt:   prompt,
		in:       in,
		out:      out,
		specPath: opts.SpecPath,
	}
}

// Run drives the read loop and the spec watcher until quit, EOF or
// context cancellation.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return s.readLoop(ctx)
	})
	if s.specPath != "" {
		g.Go(func() error {
			return s.watchSpec(ctx)
		})
	}
	return g.Wait()
}

func (s *Session) readLoop(ctx context.Context) error {
	output.PrintSessionBanner(s.out)
	scanner := bufio.NewScanner(s.in)

	for {
		fmt.Fprint(s.out, output.Prompt(s.prompt+" "))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.handleLine(ctx, line); quit {
			return nil
		}
	}
}

// handleLine executes one input line and reports whether the session
// should end.
func (s *Session) handleLine(ctx context.Context, line string) bool {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintf(s.out, "cannot parse input: %v\n", err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}
	name, args := tokens[0], tokens[1:]

	switch name {
	case spec.CmdQuit:
		return true

	case spec.CmdHelp:
		if len(args) == 0 {
			fmt.Fprint(s.out, s.res.HelpMessage())
		} else {
			s.printUsage(args[0])
		}
		s.record(name, args, "ok", "")
		return false

	case spec.CmdParam:
		if len(args) < 2 {
			fmt.Fprintln(s.out, "usage: param <cmd> <set|get|reset> [args]")
			s.record(name, args, "invalid", "missing command or action")
			return false
		}
		s.runParam(args[0], args[1:])
		return false
	}

	switch s.res.CommandType(name) {
	case resolver.CommandTypeParam:
		// Param commands may also be invoked directly, without the
		// leading "param" keyword.
		s.runParam(name, args)

	case resolver.CommandTypeUser:
		out, err := s.disp.RunUser(ctx, name)
		if err != nil {
			output.PrintFailure(s.out, err.Error())
			s.record(name, args, "error", err.Error())
			return false
		}
		if out != "" {
			fmt.Fprintln(s.out, out)
		}
		s.record(name, args, "ok", "")

	default:
		fmt.Fprintf(s.out, "unknown command %q (type ? for help)\n", name)
		s.record(name, args, "invalid", "unknown command")
	}
	return false
}

func (s *Session) runParam(cmd string, args []string) {
	msg, ok := s.disp.RunParam(cmd, args)
	if !ok {
		output.PrintFailure(s.out, msg)
		s.record(cmd, args, "invalid", msg)
		return
	}
	fmt.Fprintln(s.out, msg)
	s.record(cmd, args, "ok", "")
}

func (s *Session) printUsage(name string) {
	usage, err := s.res.CommandUsage(name)
	if err != nil {
		// Unknown names are user feedback, never session-fatal.
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	fmt.Fprintln(s.out, usage)
}

func (s *Session) record(command string, args []string, outcome, detail string) {
	if s.hist == nil {
		return
	}
	s.hist.LogCommand(command, args, outcome, detail)
}
