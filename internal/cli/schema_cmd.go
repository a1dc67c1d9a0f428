package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [identifier]",
	Short: "List registry schemas or print one schema's field tree",
	Long: `Without arguments, lists the identifiers of every schema in the
registry in registration order. With an identifier, prints that schema's
field tree: types, required markers, enums and cross-references.`,
	Example: `  # List all schema identifiers
  qicli schema

  # Print the root specification schema
  qicli schema cli/spec.schema`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaCommand(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaCommand(args []string, out, errOut io.Writer) error {
	registry := schema.DefaultRegistry()

	if len(args) == 0 {
		for _, id := range registry.IDs() {
			s, _ := registry.Schema(id)
			fmt.Fprintf(out, "%-28s %s\n", id, s.Description)
		}
		return nil
	}

	s, ok := registry.Schema(args[0])
	if !ok {
		fmt.Fprintf(errOut, "Error: unknown schema %q\n", args[0])
		fmt.Fprintf(errOut, "Known schemas: %s\n", strings.Join(registry.IDs(), ", "))
		return &exitError{code: ExitInvalidArguments}
	}

	fmt.Fprintf(out, "Schema %s\n", s.ID)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", s.Description)
	printSchemaField(s.Root, "", out)
	return nil
}

// printSchemaField prints a schema field and its children with indentation.
func printSchemaField(f schema.Field, indent string, out io.Writer) {
	name := f.Name
	if name == "" {
		name = "(root)"
	}

	switch {
	case f.Ref != "":
		fmt.Fprintf(out, "%s%s: ref %s%s\n", indent, name, f.Ref, requiredMarker(f))
	case len(f.Enum) > 0:
		fmt.Fprintf(out, "%s%s: enum[%s]%s\n", indent, name, strings.Join(f.Enum, ", "), requiredMarker(f))
	default:
		fmt.Fprintf(out, "%s%s: %s%s\n", indent, name, f.Type, requiredMarker(f))
	}

	for _, child := range f.Children {
		printSchemaField(child, indent+"  ", out)
	}
	if f.Items != nil {
		item := *f.Items
		if item.Name == "" {
			item.Name = "[]"
		}
		printSchemaField(item, indent+"  ", out)
	}
}

func requiredMarker(f schema.Field) string {
	if f.Required {
		return " (required)"
	}
	return ""
}
