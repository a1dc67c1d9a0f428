package resolver

import (
	"fmt"
	"strings"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/schema"
)

// Action is the closed set of param command actions. Dispatch is by
// enum, not free-form string comparison, so the supported set is
// checkable in one place.
type Action int

const (
	ActionSet Action = iota
	ActionGet
	ActionReset
)

// String returns the action keyword as typed by the user.
func (a Action) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionGet:
		return "get"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseAction maps a user-typed keyword onto the Action enum.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "set":
		return ActionSet, true
	case "get":
		return ActionGet, true
	case "reset":
		return ActionReset, true
	default:
		return 0, false
	}
}

// Arity returns the number of positional arguments the action takes
// after the action keyword itself.
func (a Action) Arity() int {
	if a == ActionSet {
		return 2
	}
	return 1
}

// schemaID returns the argument schema the action validates against.
func (a Action) schemaID() string {
	if a == ActionSet {
		return schema.ArgSetSchemaID
	}
	return schema.ArgGetSchemaID
}

// ValidateParamCommand checks a param command invocation of the form
// [action, args...]. It fails closed: an unknown command, a missing
// registered validator, an unknown action, a wrong arity, or a schema
// rejection all yield false with a diagnostic. It never returns an
// error; invalid interactive input must not terminate a session.
func (r *Resolver) ValidateParamCommand(name string, args []string) (bool, string) {
	if !r.master.HasParamCommand(name) {
		return false, fmt.Sprintf("unknown param command %q", name)
	}
	if len(args) == 0 {
		return false, fmt.Sprintf("missing action for %q (expected set, get or reset)", name)
	}

	action, ok := ParseAction(args[0])
	if !ok {
		return false, fmt.Sprintf("unknown action %q (expected set, get or reset)", args[0])
	}

	rest := args[1:]
	if len(rest) != action.Arity() {
		return false, fmt.Sprintf("%s takes %d argument(s), got %d", action, action.Arity(), len(rest))
	}

	validate, ok := r.validators[action.schemaID()]
	if !ok {
		return false, fmt.Sprintf("no validator registered for %s", action.schemaID())
	}

	var payload map[string]any
	if action == ActionSet {
		payload = map[string]any{"name": rest[0], "value": rest[1]}
	} else {
		payload = map[string]any{"name": rest[0]}
	}

	if result := validate(payload); !result.Valid {
		msgs := make([]string, 0, len(result.Errors))
		for _, v := range result.Errors {
			msgs = append(msgs, v.String())
		}
		return false, fmt.Sprintf("invalid %s arguments: %s", action, strings.Join(msgs, "; "))
	}
	return true, ""
}
