// Package spec defines the CLI specification data model and the assembler
// that combines a user-authored partial specification with the built-in
// system commands. Validation is not performed here; the resolver package
// validates the assembled specification before deriving anything from it.
package spec

// CommandClass categorizes a command or parameter as informational or
// side-effecting.
type CommandClass string

const (
	// ClassInfo marks commands that only display information.
	ClassInfo CommandClass = "info"
	// ClassExec marks commands that execute an external action.
	ClassExec CommandClass = "exec"
)

// Option holds the flag metadata of a single parameter.
type Option struct {
	Type         string `json:"type" yaml:"type" koanf:"type"`
	ShortFlag    string `json:"short_flag" yaml:"short_flag" koanf:"short_flag"`
	DefaultValue string `json:"default_value" yaml:"default_value" koanf:"default_value"`
}

// ParamDefinition describes one named, typed, defaultable parameter of a
// param command. Option, Title and Usage are optional at the model level;
// the schema marks them required, and derivation tolerates their absence
// defensively (see resolver.MasterInfo).
type ParamDefinition struct {
	Name          string       `json:"name" yaml:"name" koanf:"name"`
	Option        *Option      `json:"option,omitempty" yaml:"option,omitempty" koanf:"option"`
	AllowedValues []string     `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty" koanf:"allowed_values"`
	Title         string       `json:"title,omitempty" yaml:"title,omitempty" koanf:"title"`
	Usage         string       `json:"usage,omitempty" yaml:"usage,omitempty" koanf:"usage"`
	Class         CommandClass `json:"class" yaml:"class" koanf:"class"`
}

// SystemCommandEntry describes one of the three built-in commands.
type SystemCommandEntry struct {
	Title string       `json:"title" yaml:"title" koanf:"title"`
	Usage string       `json:"usage" yaml:"usage" koanf:"usage"`
	Class CommandClass `json:"class" yaml:"class" koanf:"class"`
}

// ParamCommand is a user-declared command exposing named parameters that
// can be set, queried and reset interactively.
type ParamCommand struct {
	Name   string            `json:"name" yaml:"name" koanf:"name"`
	Title  string            `json:"title,omitempty" yaml:"title,omitempty" koanf:"title"`
	Usage  string            `json:"usage,omitempty" yaml:"usage,omitempty" koanf:"usage"`
	Params []ParamDefinition `json:"params" yaml:"params" koanf:"params"`
}

// UserCommand is a user-declared command with no parameters.
type UserCommand struct {
	Name  string       `json:"name" yaml:"name" koanf:"name"`
	Title string       `json:"title" yaml:"title" koanf:"title"`
	Usage string       `json:"usage,omitempty" yaml:"usage,omitempty" koanf:"usage"`
	Class CommandClass `json:"class" yaml:"class" koanf:"class"`
}

// CommandSet groups the three command categories of a specification.
type CommandSet struct {
	SystemCmd map[string]SystemCommandEntry `json:"system_cmd" yaml:"system_cmd" koanf:"system_cmd"`
	ParamCmd  []ParamCommand                `json:"param_cmd" yaml:"param_cmd" koanf:"param_cmd"`
	UserCmd   []UserCommand                 `json:"user_cmd" yaml:"user_cmd" koanf:"user_cmd"`
}

// CliSpecification is the complete, assembled specification. It is built
// once at startup and treated as immutable afterwards.
type CliSpecification struct {
	Prompt string     `json:"prompt" yaml:"prompt" koanf:"prompt"`
	Cmd    CommandSet `json:"cmd" yaml:"cmd" koanf:"cmd"`
}

// UserSpec is the user-authored partial specification as loaded from disk,
// before the built-in system commands are merged in.
type UserSpec struct {
	Prompt string `json:"prompt" yaml:"prompt" koanf:"prompt"`
	Cmd    struct {
		ParamCmd []ParamCommand `json:"param_cmd" yaml:"param_cmd" koanf:"param_cmd"`
		UserCmd  []UserCommand  `json:"user_cmd" yaml:"user_cmd" koanf:"user_cmd"`
	} `json:"cmd" yaml:"cmd" koanf:"cmd"`
}

// ParamCommand returns the param command with the given name, if present.
func (s *CliSpecification) ParamCommand(name string) (*ParamCommand, bool) {
	for i := range s.Cmd.ParamCmd {
		if s.Cmd.ParamCmd[i].Name == name {
			return &s.Cmd.ParamCmd[i], true
		}
	}
	return nil, false
}

// UserCommand returns the user command with the given name, if present.
func (s *CliSpecification) UserCommand(name string) (*UserCommand, bool) {
	for i := range s.Cmd.UserCmd {
		if s.Cmd.UserCmd[i].Name == name {
			return &s.Cmd.UserCmd[i], true
		}
	}
	return nil, false
}
