package resolver

// CommandType classifies a command name into one of the three categories
// of the specification, or Absent when no category contains it.
type CommandType int

const (
	// CommandTypeAbsent means the name belongs to no category.
	CommandTypeAbsent CommandType = iota
	// CommandTypeUser is a declared command without parameters.
	CommandTypeUser
	// CommandTypeParam is a declared command with parameters.
	CommandTypeParam
	// CommandTypeSystem is one of the built-in commands.
	CommandTypeSystem
)

// String returns the category key used in the specification document.
func (t CommandType) String() string {
	switch t {
	case CommandTypeUser:
		return "user_cmd"
	case CommandTypeParam:
		return "param_cmd"
	case CommandTypeSystem:
		return "system_cmd"
	default:
		return "absent"
	}
}

// CommandType classifies a name. Resolution order is user -> param ->
// system, first match wins. Validation rejects cross-category duplicates,
// so on a valid specification the order is unobservable; it is fixed here
// so behavior stays deterministic even against a malformed structure.
func (r *Resolver) CommandType(name string) CommandType {
	switch {
	case r.master.HasUserCommand(name):
		return CommandTypeUser
	case r.master.HasParamCommand(name):
		return CommandTypeParam
	case r.master.HasSystemCommand(name):
		return CommandTypeSystem
	default:
		return CommandTypeAbsent
	}
}
