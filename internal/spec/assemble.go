package spec

// Built-in system command names. SystemCommandOrder fixes the display
// order used by help output; Go maps do not preserve insertion order.
const (
	CmdQuit  = "quit"
	CmdHelp  = "?"
	CmdParam = "param"
)

// SystemCommandOrder is the canonical ordering of the built-in commands.
var SystemCommandOrder = []string{CmdQuit, CmdHelp, CmdParam}

// SystemCommands returns a fresh copy of the fixed built-in command map.
// Callers get their own copy so the assembled specification cannot alias
// shared state.
func SystemCommands() map[string]SystemCommandEntry {
	return map[string]SystemCommandEntry{
		CmdQuit: {
			Title: "quit cli",
			Usage: "quit",
			Class: ClassInfo,
		},
		CmdHelp: {
			Title: "display help message",
			Usage: "? [command]",
			Class: ClassInfo,
		},
		CmdParam: {
			Title: "get/set/reset parameters",
			Usage: "param <cmd> <set|get|reset> [args]",
			Class: ClassInfo,
		},
	}
}

// Assemble combines a user-authored partial specification with the
// built-in system commands into a complete CliSpecification. Absent
// param_cmd/user_cmd sequences default to empty. Assemble never
// validates; the resolver validates strictly after assembly.
func Assemble(user *UserSpec) *CliSpecification {
	assembled := &CliSpecification{
		Prompt: user.Prompt,
		Cmd: CommandSet{
			SystemCmd: SystemCommands(),
			ParamCmd:  user.Cmd.ParamCmd,
			UserCmd:   user.Cmd.UserCmd,
		},
	}
	if assembled.Cmd.ParamCmd == nil {
		assembled.Cmd.ParamCmd = []ParamCommand{}
	}
	if assembled.Cmd.UserCmd == nil {
		assembled.Cmd.UserCmd = []UserCommand{}
	}
	return assembled
}

// AsMap converts the assembled specification into the generic
// map[string]any form the schema registry validates. The conversion is
// lossless for present fields; optional fields that are absent from the
// model are omitted rather than emitted as zero values, so the schema's
// required-field checks observe what the author actually wrote.
func (s *CliSpecification) AsMap() map[string]any {
	systemCmd := make(map[string]any, len(s.Cmd.SystemCmd))
	for name, entry := range s.Cmd.SystemCmd {
		systemCmd[name] = map[string]any{
			"title": entry.Title,
			"usage": entry.Usage,
			"class": string(entry.Class),
		}
	}

	paramCmd := make([]any, 0, len(s.Cmd.ParamCmd))
	for _, pc := range s.Cmd.ParamCmd {
		m := map[string]any{"name": pc.Name}
		if pc.Title != "" {
			m["title"] = pc.Title
		}
		if pc.Usage != "" {
			m["usage"] = pc.Usage
		}
		params := make([]any, 0, len(pc.Params))
		for _, p := range pc.Params {
			params = append(params, p.asMap())
		}
		m["params"] = params
		paramCmd = append(paramCmd, m)
	}

	userCmd := make([]any, 0, len(s.Cmd.UserCmd))
	for _, uc := range s.Cmd.UserCmd {
		m := map[string]any{"name": uc.Name}
		if uc.Title != "" {
			m["title"] = uc.Title
		}
		if uc.Class != "" {
			m["class"] = string(uc.Class)
		}
		if uc.Usage != "" {
			m["usage"] = uc.Usage
		}
		userCmd = append(userCmd, m)
	}

	return map[string]any{
		"prompt": s.Prompt,
		"cmd": map[string]any{
			"system_cmd": systemCmd,
			"param_cmd":  paramCmd,
			"user_cmd":   userCmd,
		},
	}
}

func (p ParamDefinition) asMap() map[string]any {
	m := map[string]any{"name": p.Name}
	if p.Class != "" {
		m["class"] = string(p.Class)
	}
	if p.Option != nil {
		m["option"] = map[string]any{
			"type":          p.Option.Type,
			"short_flag":    p.Option.ShortFlag,
			"default_value": p.Option.DefaultValue,
		}
	}
	if len(p.AllowedValues) > 0 {
		vals := make([]any, 0, len(p.AllowedValues))
		for _, v := range p.AllowedValues {
			vals = append(vals, v)
		}
		m["allowed_values"] = vals
	}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.Usage != "" {
		m["usage"] = p.Usage
	}
	return m
}
