// Package schema holds the fixed registry of declarative validators the
// CLI specification is checked against. Schemas are value tables, not
// behavior: each one describes the shape of a document fragment, and the
// registry compiles them into validator closures, resolving cross-schema
// references by identifier at compile time.
package schema

import "fmt"

// FieldType is the expected type of a schema field's value.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeObject FieldType = "object"
	FieldTypeArray  FieldType = "array"
)

// Field describes one node of a schema. A field is validated either by
// its own Type/Enum/Children/Items description or, when Ref is set, by
// the referenced registry schema.
type Field struct {
	// Name is the key in the parent object. Empty for array items and
	// schema roots.
	Name string
	// Type is the expected value type. Ignored when Ref is set.
	Type FieldType
	// Required rejects absent fields in the parent object.
	Required bool
	// Enum restricts a string field to the listed values.
	Enum []string
	// Ref delegates validation of this field's value to the registry
	// schema with the given identifier.
	Ref string
	// Closed rejects object keys that are not declared in Children.
	Closed bool
	// Children are the declared fields of an object.
	Children []Field
	// Items describes each element of an array.
	Items *Field
	// UniqueBy enforces uniqueness of the named child key across the
	// elements of an array (e.g. command names within a list).
	UniqueBy string
}

// Schema is a named, registrable validation root.
type Schema struct {
	// ID is the unique, namespaced identifier other schemas use in Ref
	// (e.g. "cli/param.schema").
	ID          string
	Description string
	Root        Field
}

// Violation is one structural error found during validation.
type Violation struct {
	// Path locates the offending value (e.g. "cmd.param_cmd[0].name").
	Path    string
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Result is the outcome of running a compiled validator.
type Result struct {
	Valid  bool
	Errors []Violation
}

// Validator checks a decoded document fragment against a compiled schema.
type Validator func(data any) Result
