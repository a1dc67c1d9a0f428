package resolver

import (
	"fmt"
	"strings"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

// Help section headers. Every section is always printed; an empty
// category contributes its header and nothing else.
const (
	helpHeaderSystem = "System commands"
	helpHeaderParam  = "Param commands"
	helpHeaderUser   = "Commands without param"
)

// deriveHelp builds the fixed three-section help report: system commands
// in canonical key order, then param commands and user commands in their
// sequence order.
func deriveHelp(s *spec.CliSpecification) string {
	var sb strings.Builder

	sb.WriteString(helpHeaderSystem)
	sb.WriteString("\n")
	for _, name := range spec.SystemCommandOrder {
		entry, ok := s.Cmd.SystemCmd[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, " - %s: %s\n", name, entry.Title)
	}

	sb.WriteString(helpHeaderParam)
	sb.WriteString("\n")
	for _, pc := range s.Cmd.ParamCmd {
		fmt.Fprintf(&sb, " - %s: %s\n", pc.Name, pc.Title)
	}

	sb.WriteString(helpHeaderUser)
	sb.WriteString("\n")
	for _, uc := range s.Cmd.UserCmd {
		fmt.Fprintf(&sb, " - %s: %s\n", uc.Name, uc.Title)
	}

	return sb.String()
}
