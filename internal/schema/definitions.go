package schema

// Schema identifiers. Other schemas reference these in Ref fields, and
// the resolver looks validators up by identifier.
const (
	ParamSchemaID       = "cli/param.schema"
	SystemValueSchemaID = "cli/system-value.schema"
	SystemSchemaID      = "cli/system.schema"
	ParamCmdSchemaID    = "cli/param-cmd.schema"
	UserCmdSchemaID     = "cli/user-cmd.schema"
	SpecSchemaID        = "cli/spec.schema"
	ArgSetSchemaID      = "cli/arg-set.schema"
	ArgGetSchemaID      = "cli/arg-get.schema"
)

// classEnum is shared by every field that carries a command class.
var classEnum = []string{"info", "exec"}

// ParamSchema validates a single parameter definition. The option, title
// and usage fields are required here; the resolver's derivation is
// deliberately tolerant of their absence so a relaxed variant of this
// schema keeps working (see resolver.MasterInfo).
var ParamSchema = Schema{
	ID:          ParamSchemaID,
	Description: "Parameter definition of a param command",
	Root: Field{
		Type: FieldTypeObject,
		Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true},
			{Name: "option", Type: FieldTypeObject, Required: true, Children: []Field{
				{Name: "type", Type: FieldTypeString, Required: true},
				{Name: "short_flag", Type: FieldTypeString, Required: true},
				{Name: "default_value", Type: FieldTypeString, Required: true},
			}},
			{Name: "allowed_values", Type: FieldTypeArray, Items: &Field{Type: FieldTypeString}},
			{Name: "title", Type: FieldTypeString, Required: true},
			{Name: "usage", Type: FieldTypeString, Required: true},
			{Name: "class", Type: FieldTypeString, Required: true, Enum: classEnum},
		},
	},
}

// SystemValueSchema validates one built-in command entry.
var SystemValueSchema = Schema{
	ID:          SystemValueSchemaID,
	Description: "Value of a system command map entry",
	Root: Field{
		Type: FieldTypeObject,
		Children: []Field{
			{Name: "title", Type: FieldTypeString, Required: true},
			{Name: "usage", Type: FieldTypeString, Required: true},
			{Name: "class", Type: FieldTypeString, Required: true, Enum: classEnum},
		},
	},
}

// SystemSchema validates the system command map: exactly the three
// built-in keys, each matching the system-value schema.
var SystemSchema = Schema{
	ID:          SystemSchemaID,
	Description: "Built-in system command map (quit, ?, param)",
	Root: Field{
		Type:   FieldTypeObject,
		Closed: true,
		Children: []Field{
			{Name: "quit", Required: true, Ref: SystemValueSchemaID},
			{Name: "?", Required: true, Ref: SystemValueSchemaID},
			{Name: "param", Required: true, Ref: SystemValueSchemaID},
		},
	},
}

// ParamCmdSchema validates the ordered list of param commands. Command
// names are unique across the list, and parameter names are unique
// within each command.
var ParamCmdSchema = Schema{
	ID:          ParamCmdSchemaID,
	Description: "Ordered list of param commands",
	Root: Field{
		Type:     FieldTypeArray,
		UniqueBy: "name",
		Items: &Field{
			Type: FieldTypeObject,
			Children: []Field{
				{Name: "name", Type: FieldTypeString, Required: true},
				{Name: "title", Type: FieldTypeString},
				{Name: "usage", Type: FieldTypeString},
				{Name: "params", Type: FieldTypeArray, Required: true, UniqueBy: "name",
					Items: &Field{Ref: ParamSchemaID}},
			},
		},
	},
}

// UserCmdSchema validates the ordered list of parameterless commands.
var UserCmdSchema = Schema{
	ID:          UserCmdSchemaID,
	Description: "Ordered list of user commands without parameters",
	Root: Field{
		Type:     FieldTypeArray,
		UniqueBy: "name",
		Items: &Field{
			Type: FieldTypeObject,
			Children: []Field{
				{Name: "name", Type: FieldTypeString, Required: true},
				{Name: "title", Type: FieldTypeString, Required: true},
				{Name: "usage", Type: FieldTypeString},
				{Name: "class", Type: FieldTypeString, Required: true, Enum: classEnum},
			},
		},
	},
}

// SpecSchema validates the assembled top-level specification.
var SpecSchema = Schema{
	ID:          SpecSchemaID,
	Description: "Complete assembled CLI specification",
	Root: Field{
		Type: FieldTypeObject,
		Children: []Field{
			{Name: "prompt", Type: FieldTypeString, Required: true},
			{Name: "cmd", Type: FieldTypeObject, Required: true, Children: []Field{
				{Name: "system_cmd", Required: true, Ref: SystemSchemaID},
				{Name: "param_cmd", Required: true, Ref: ParamCmdSchemaID},
				{Name: "user_cmd", Required: true, Ref: UserCmdSchemaID},
			}},
		},
	},
}

// ArgSetSchema validates the argument object of "param <cmd> set".
var ArgSetSchema = Schema{
	ID:          ArgSetSchemaID,
	Description: "Arguments of a set action: parameter name and value",
	Root: Field{
		Type:   FieldTypeObject,
		Closed: true,
		Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true},
			{Name: "value", Type: FieldTypeString, Required: true},
		},
	},
}

// ArgGetSchema validates the argument object of "param <cmd> get|reset".
var ArgGetSchema = Schema{
	ID:          ArgGetSchemaID,
	Description: "Arguments of a get or reset action: parameter name",
	Root: Field{
		Type:   FieldTypeObject,
		Closed: true,
		Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true},
		},
	},
}

// DefaultRegistry returns the fixed registry with every CLI schema
// registered in dependency order: referenced schemas first, dependents
// after them.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []*Schema{
		&ParamSchema,
		&SystemValueSchema,
		&SystemSchema,
		&ParamCmdSchema,
		&UserCmdSchema,
		&SpecSchema,
		&ArgSetSchema,
		&ArgGetSchema,
	} {
		// The fixed set has no duplicate identifiers; a failure here is
		// a programming error, not a runtime condition.
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// InitDefault compiles the default registry and returns its validators.
func InitDefault() (map[string]Validator, error) {
	return DefaultRegistry().InitAll()
}
