package resolver

import (
	"fmt"
	"strings"
)

// paramUsageFooter explains the value resolution order of param
// commands: the default applies until a value is set, and the last set
// value applies afterwards until reset.
const paramUsageFooter = "Parameters fall back to their default value until set; once set, the last set value applies until reset."

// CommandUsage returns the usage text for a command, dispatching on its
// category. It returns an UnknownCommandError exactly when CommandType
// reports the name absent.
func (r *Resolver) CommandUsage(name string) (string, error) {
	switch r.CommandType(name) {
	case CommandTypeParam:
		return r.paramUsage(name), nil

	case CommandTypeSystem:
		entry := r.spec.Cmd.SystemCmd[name]
		return fmt.Sprintf("%s: %s", name, entry.Title), nil

	case CommandTypeUser:
		uc, ok := r.spec.UserCommand(name)
		if !ok {
			// Classification and the command sequence disagree. The
			// resolver derives both from one frozen specification, so
			// this cannot happen short of memory corruption.
			return "", fmt.Errorf("internal: command %q classified as user_cmd but missing from the user command sequence", name)
		}
		return uc.Title, nil

	default:
		return "", &UnknownCommandError{Name: name}
	}
}

// paramUsage renders a param command's usage: invocation header, one
// line per option in declaration order, and the fallback footer.
func (r *Resolver) paramUsage(name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [run|set|ls] [args]\n", name)

	if options, ok := r.master.Options(name); ok {
		usages, _ := r.master.Usages(name)
		for _, param := range options.Keys() {
			opt, _ := options.Get(param)
			usage := ""
			if usages != nil {
				usage, _ = usages.Get(param)
			}
			fmt.Fprintf(&sb, " -%s, --%s: %s\n", opt.ShortFlag, param, usage)
		}
	}

	sb.WriteString(paramUsageFooter)
	return sb.String()
}
