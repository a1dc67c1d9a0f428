// Package resolver implements the specification resolution engine: it
// validates an assembled CLI specification against the schema registry,
// derives the master info projection and the help message once, and
// answers command classification, usage and param-argument queries for
// the rest of the process lifetime.
//
// A Resolver moves through three states during construction, Unvalidated
// -> Validated -> Derived, and New only ever returns a value in the
// terminal Derived state. There is no reload: a second specification
// needs a second Resolver.
package resolver

import (
	"fmt"
	"strings"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/schema"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

// ValidationError reports an assembled specification that failed schema
// validation. It carries the full structured violation list; no partial
// specification is ever exposed past it.
type ValidationError struct {
	Violations []schema.Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("specification validation failed: %s", e.Violations[0])
	}
	return fmt.Sprintf("specification validation failed with %d violations (first: %s)",
		len(e.Violations), e.Violations[0])
}

// UnknownCommandError reports a usage query for a name present in none
// of the three command categories. It is a recoverable, user-facing
// condition.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// Resolver answers classification, usage and validation queries over a
// validated specification. All derived state is computed during New and
// immutable afterwards; queries are pure reads and need no locking.
type Resolver struct {
	spec       *spec.CliSpecification
	validators map[string]schema.Validator
	master     *MasterInfo
	help       string
}

// New validates the assembled specification and derives its master info
// and help message. On any failure no Resolver is returned; a returned
// Resolver is always fully initialized.
func New(s *spec.CliSpecification, validators map[string]schema.Validator) (*Resolver, error) {
	validate, ok := validators[schema.SpecSchemaID]
	if !ok {
		return nil, fmt.Errorf("no validator registered for %s", schema.SpecSchemaID)
	}

	result := validate(s.AsMap())
	violations := result.Errors
	violations = append(violations, checkDisjointNames(s)...)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	return &Resolver{
		spec:       s,
		validators: validators,
		master:     deriveMasterInfo(s),
		help:       deriveHelp(s),
	}, nil
}

// Spec returns the validated specification.
func (r *Resolver) Spec() *spec.CliSpecification { return r.spec }

// MasterInfo returns the derived projection of the specification.
func (r *Resolver) MasterInfo() *MasterInfo { return r.master }

// HelpMessage returns the formatted help report derived at construction.
func (r *Resolver) HelpMessage() string { return r.help }

// checkDisjointNames enforces that the union of system, param and user
// command names is pairwise disjoint. Classification precedence (user >
// param > system) would hide such collisions, so they are rejected
// outright during validation.
func checkDisjointNames(s *spec.CliSpecification) []schema.Violation {
	var violations []schema.Violation
	owner := make(map[string]string)

	for name := range s.Cmd.SystemCmd {
		owner[name] = "system command"
	}
	for i, pc := range s.Cmd.ParamCmd {
		if prev, taken := owner[pc.Name]; taken {
			violations = append(violations, schema.Violation{
				Path:    fmt.Sprintf("cmd.param_cmd[%d].name", i),
				Message: fmt.Sprintf("command name %q already declared as a %s", pc.Name, prev),
			})
			continue
		}
		owner[pc.Name] = "param command"
	}
	for i, uc := range s.Cmd.UserCmd {
		if prev, taken := owner[uc.Name]; taken {
			violations = append(violations, schema.Violation{
				Path:    fmt.Sprintf("cmd.user_cmd[%d].name", i),
				Message: fmt.Sprintf("command name %q already declared as a %s", uc.Name, prev),
			})
			continue
		}
		owner[uc.Name] = "user command"
	}
	return violations
}

// FormatViolations renders a violation list one per line, for diagnostic
// display at startup.
func FormatViolations(violations []schema.Violation) string {
	var sb strings.Builder
	for _, v := range violations {
		sb.WriteString("  - ")
		sb.WriteString(v.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
