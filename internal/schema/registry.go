package schema

import (
	"fmt"
	"sort"
)

// Registry holds named schemas in registration order and compiles them
// into validators. Registration order must respect Ref dependencies:
// a schema can only be compiled after every schema it references.
type Registry struct {
	order    []string
	schemas  map[string]*Schema
	compiled map[string]Validator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas:  make(map[string]*Schema),
		compiled: make(map[string]Validator),
	}
}

// Register adds a schema to the registry. A duplicate identifier is a
// configuration error.
func (r *Registry) Register(s *Schema) error {
	if s.ID == "" {
		return fmt.Errorf("schema registered without an identifier")
	}
	if _, exists := r.schemas[s.ID]; exists {
		return fmt.Errorf("duplicate schema identifier %q", s.ID)
	}
	r.schemas[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

// IDs returns the registered schema identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Schema returns the registered schema with the given identifier.
func (r *Registry) Schema(id string) (*Schema, bool) {
	s, ok := r.schemas[id]
	return s, ok
}

// Compile turns a schema into a validator. Every Ref inside the schema
// must name a schema that has already been compiled; an unresolved
// reference is a configuration error, detected before the validator is
// returned.
func (r *Registry) Compile(s *Schema) (Validator, error) {
	if err := r.checkRefs(s.Root, s.ID); err != nil {
		return nil, err
	}
	root := s.Root
	return func(data any) Result {
		var violations []Violation
		r.validateField(root, data, "", &violations)
		return Result{Valid: len(violations) == 0, Errors: violations}
	}, nil
}

// InitAll compiles every registered schema in registration order and
// returns the validators keyed by identifier. It fails fast on the
// first unresolved reference.
func (r *Registry) InitAll() (map[string]Validator, error) {
	for _, id := range r.order {
		v, err := r.Compile(r.schemas[id])
		if err != nil {
			return nil, err
		}
		r.compiled[id] = v
	}
	out := make(map[string]Validator, len(r.compiled))
	for id, v := range r.compiled {
		out[id] = v
	}
	return out, nil
}

// checkRefs walks the schema tree and verifies every Ref resolves to an
// already-compiled schema.
func (r *Registry) checkRefs(f Field, owner string) error {
	if f.Ref != "" {
		if _, ok := r.compiled[f.Ref]; !ok {
			return fmt.Errorf("schema %q references %q, which is not compiled yet (check registration order)", owner, f.Ref)
		}
	}
	for _, c := range f.Children {
		if err := r.checkRefs(c, owner); err != nil {
			return err
		}
	}
	if f.Items != nil {
		if err := r.checkRefs(*f.Items, owner); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) validateField(f Field, data any, path string, out *[]Violation) {
	if f.Ref != "" {
		// The ref is guaranteed compiled by checkRefs.
		res := r.compiled[f.Ref](data)
		for _, v := range res.Errors {
			*out = append(*out, Violation{Path: joinPath(path, v.Path), Message: v.Message})
		}
		return
	}

	switch f.Type {
	case FieldTypeString:
		s, ok := data.(string)
		if !ok {
			*out = append(*out, Violation{Path: path, Message: fmt.Sprintf("expected string, got %T", data)})
			return
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			*out = append(*out, Violation{Path: path, Message: fmt.Sprintf("value %q not in allowed set %v", s, f.Enum)})
		}

	case FieldTypeObject:
		m, ok := data.(map[string]any)
		if !ok {
			*out = append(*out, Violation{Path: path, Message: fmt.Sprintf("expected object, got %T", data)})
			return
		}
		declared := make(map[string]bool, len(f.Children))
		for _, c := range f.Children {
			declared[c.Name] = true
			val, present := m[c.Name]
			if !present {
				if c.Required {
					*out = append(*out, Violation{Path: joinPath(path, c.Name), Message: "required field missing"})
				}
				continue
			}
			r.validateField(c, val, joinPath(path, c.Name), out)
		}
		if f.Closed {
			// Deterministic reporting order for unknown keys.
			extra := make([]string, 0)
			for k := range m {
				if !declared[k] {
					extra = append(extra, k)
				}
			}
			sort.Strings(extra)
			for _, k := range extra {
				*out = append(*out, Violation{Path: joinPath(path, k), Message: "unknown field"})
			}
		}

	case FieldTypeArray:
		items, ok := data.([]any)
		if !ok {
			*out = append(*out, Violation{Path: path, Message: fmt.Sprintf("expected array, got %T", data)})
			return
		}
		if f.Items != nil {
			for i, item := range items {
				r.validateField(*f.Items, item, fmt.Sprintf("%s[%d]", path, i), out)
			}
		}
		if f.UniqueBy != "" {
			seen := make(map[string]int)
			for i, item := range items {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				key, ok := m[f.UniqueBy].(string)
				if !ok {
					continue
				}
				if first, dup := seen[key]; dup {
					*out = append(*out, Violation{
						Path:    fmt.Sprintf("%s[%d].%s", path, i, f.UniqueBy),
						Message: fmt.Sprintf("duplicate %s %q (first declared at index %d)", f.UniqueBy, key, first),
					})
					continue
				}
				seen[key] = i
			}
		}

	default:
		*out = append(*out, Violation{Path: path, Message: fmt.Sprintf("schema field %q has unsupported type %q", f.Name, f.Type)})
	}
}

func joinPath(base, leaf string) string {
	switch {
	case base == "":
		return leaf
	case leaf == "":
		return base
	default:
		return base + "." + leaf
	}
}

func contains(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
