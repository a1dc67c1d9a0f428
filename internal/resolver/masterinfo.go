package resolver

import "github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"

// OptionMap is an insertion-ordered mapping from parameter name to its
// option metadata. Iteration order matters: usage text lists options in
// the order the specification declared them.
type OptionMap struct {
	keys []string
	vals map[string]spec.Option
}

func newOptionMap() *OptionMap {
	return &OptionMap{vals: make(map[string]spec.Option)}
}

func (m *OptionMap) put(key string, val spec.Option) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

// Keys returns the parameter names in insertion order.
func (m *OptionMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the option for the named parameter.
func (m *OptionMap) Get(key string) (spec.Option, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Len returns the number of entries.
func (m *OptionMap) Len() int { return len(m.keys) }

// StringMap is an insertion-ordered mapping from parameter name to a
// string property (usage, title or default value).
type StringMap struct {
	keys []string
	vals map[string]string
}

func newStringMap() *StringMap {
	return &StringMap{vals: make(map[string]string)}
}

func (m *StringMap) put(key, val string) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

// Keys returns the parameter names in insertion order.
func (m *StringMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value for the named parameter.
func (m *StringMap) Get(key string) (string, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Len returns the number of entries.
func (m *StringMap) Len() int { return len(m.keys) }

// MasterInfo is the read-only projection of a validated specification,
// derived once and cached for the process lifetime.
type MasterInfo struct {
	userCommands   []string
	paramCommands  []string
	systemCommands []string

	options  map[string]*OptionMap
	usages   map[string]*StringMap
	titles   map[string]*StringMap
	defaults map[string]*StringMap
}

// UserCommandNames returns the user command names in sequence order.
func (m *MasterInfo) UserCommandNames() []string { return copyStrings(m.userCommands) }

// ParamCommandNames returns the param command names in sequence order.
func (m *MasterInfo) ParamCommandNames() []string { return copyStrings(m.paramCommands) }

// SystemCommandNames returns the built-in command names in canonical order.
func (m *MasterInfo) SystemCommandNames() []string { return copyStrings(m.systemCommands) }

// Options returns the option map for the named param command. Commands
// where no parameter carries an option have no entry at all.
func (m *MasterInfo) Options(cmd string) (*OptionMap, bool) {
	om, ok := m.options[cmd]
	return om, ok
}

// Usages returns the per-parameter usage strings for the named command.
func (m *MasterInfo) Usages(cmd string) (*StringMap, bool) {
	sm, ok := m.usages[cmd]
	return sm, ok
}

// Titles returns the per-parameter titles for the named command.
func (m *MasterInfo) Titles(cmd string) (*StringMap, bool) {
	sm, ok := m.titles[cmd]
	return sm, ok
}

// Defaults returns the per-parameter default values for the named
// command, projected from the option map. Its key set always equals the
// option map's key set.
func (m *MasterInfo) Defaults(cmd string) (*StringMap, bool) {
	sm, ok := m.defaults[cmd]
	return sm, ok
}

// HasUserCommand reports whether name is a declared user command.
func (m *MasterInfo) HasUserCommand(name string) bool {
	return containsString(m.userCommands, name)
}

// HasParamCommand reports whether name is a declared param command.
func (m *MasterInfo) HasParamCommand(name string) bool {
	return containsString(m.paramCommands, name)
}

// HasSystemCommand reports whether name is a built-in command.
func (m *MasterInfo) HasSystemCommand(name string) bool {
	return containsString(m.systemCommands, name)
}

// deriveMasterInfo computes the projection of a validated specification.
// It is a pure function and never fails on validated input.
//
// Parameters that lack a queried property are skipped for that derived
// map, and commands with zero contributing parameters are omitted
// entirely. With the strict schema in force every parameter carries all
// three properties, so the skips are defensive only; they keep the
// derivation correct should the schema ever be relaxed.
func deriveMasterInfo(s *spec.CliSpecification) *MasterInfo {
	m := &MasterInfo{
		options:  make(map[string]*OptionMap),
		usages:   make(map[string]*StringMap),
		titles:   make(map[string]*StringMap),
		defaults: make(map[string]*StringMap),
	}

	for _, uc := range s.Cmd.UserCmd {
		m.userCommands = append(m.userCommands, uc.Name)
	}
	for _, pc := range s.Cmd.ParamCmd {
		m.paramCommands = append(m.paramCommands, pc.Name)
	}
	for _, name := range spec.SystemCommandOrder {
		if _, ok := s.Cmd.SystemCmd[name]; ok {
			m.systemCommands = append(m.systemCommands, name)
		}
	}

	for _, pc := range s.Cmd.ParamCmd {
		for _, p := range pc.Params {
			if p.Option != nil {
				om, ok := m.options[pc.Name]
				if !ok {
					om = newOptionMap()
					m.options[pc.Name] = om
				}
				om.put(p.Name, *p.Option)
			}
			if p.Usage != "" {
				sm, ok := m.usages[pc.Name]
				if !ok {
					sm = newStringMap()
					m.usages[pc.Name] = sm
				}
				sm.put(p.Name, p.Usage)
			}
			if p.Title != "" {
				sm, ok := m.titles[pc.Name]
				if !ok {
					sm = newStringMap()
					m.titles[pc.Name] = sm
				}
				sm.put(p.Name, p.Title)
			}
		}
	}

	// Secondary pass: defaults are a projection of the option maps, so
	// both always share the same key set.
	for cmd, om := range m.options {
		sm := newStringMap()
		for _, key := range om.keys {
			sm.put(key, om.vals[key].DefaultValue)
		}
		m.defaults[cmd] = sm
	}

	return m
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
