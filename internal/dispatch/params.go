// Package dispatch consumes the resolver's query surface to act on
// classified commands: it keeps the in-memory parameter store for param
// commands and executes user commands through a Runner behind the
// user-command allow-list.
package dispatch

import (
	"fmt"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

// ParamStore holds the current value of every parameter, seeded lazily
// from the master info defaults. Defaults themselves are static metadata
// and are never written to; set values live in a separate overlay that
// get consults first and reset clears.
type ParamStore struct {
	spec   *spec.CliSpecification
	master *resolver.MasterInfo
	values map[string]map[string]string
}

// NewParamStore creates a store over a validated specification.
func NewParamStore(s *spec.CliSpecification, master *resolver.MasterInfo) *ParamStore {
	return &ParamStore{
		spec:   s,
		master: master,
		values: make(map[string]map[string]string),
	}
}

// lookup returns the parameter definition, or an error naming what is
// missing.
func (ps *ParamStore) lookup(cmd, param string) (*spec.ParamDefinition, error) {
	pc, ok := ps.spec.ParamCommand(cmd)
	if !ok {
		return nil, fmt.Errorf("unknown param command %q", cmd)
	}
	for i := range pc.Params {
		if pc.Params[i].Name == param {
			return &pc.Params[i], nil
		}
	}
	return nil, fmt.Errorf("command %q has no parameter %q", cmd, param)
}

// Set stores a new current value. Values are checked against the
// parameter's allowed_values list when one is declared.
func (ps *ParamStore) Set(cmd, param, value string) error {
	def, err := ps.lookup(cmd, param)
	if err != nil {
		return err
	}
	if len(def.AllowedValues) > 0 && !containsValue(def.AllowedValues, value) {
		return fmt.Errorf("value %q not allowed for %s.%s (allowed: %v)", value, cmd, param, def.AllowedValues)
	}
	if ps.values[cmd] == nil {
		ps.values[cmd] = make(map[string]string)
	}
	ps.values[cmd][param] = value
	return nil
}

// Get returns the current value: the last set value if any, the default
// from the option metadata otherwise.
func (ps *ParamStore) Get(cmd, param string) (string, error) {
	def, err := ps.lookup(cmd, param)
	if err != nil {
		return "", err
	}
	if vals, ok := ps.values[cmd]; ok {
		if v, set := vals[param]; set {
			return v, nil
		}
	}
	if defaults, ok := ps.master.Defaults(cmd); ok {
		if v, ok := defaults.Get(param); ok {
			return v, nil
		}
	}
	if def.Option != nil {
		return def.Option.DefaultValue, nil
	}
	return "", fmt.Errorf("parameter %s.%s has no value and no default", cmd, param)
}

// Reset drops the set value so the default applies again.
func (ps *ParamStore) Reset(cmd, param string) error {
	if _, err := ps.lookup(cmd, param); err != nil {
		return err
	}
	if vals, ok := ps.values[cmd]; ok {
		delete(vals, param)
	}
	return nil
}

func containsValue(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
