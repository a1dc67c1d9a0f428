package cli

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/schema"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

var validateCmd = &cobra.Command{
	Use:   "validate <spec-file>",
	Short: "Validate a CLI specification file",
	Long: `Validate a CLI specification file against the schema registry.

The file is assembled with the built-in system commands first, then the
complete specification is validated:
  - Required fields present (prompt, command lists, param options)
  - Field types and class enums correct
  - Command and parameter names unique, disjoint across categories

Exit Codes:
  0 - Success (specification is valid)
  1 - Validation failed
  3 - Invalid arguments or unreadable file`,
	Example: `  # Validate a JSON specification
  qicli validate cli.spec.json

  # Validate a YAML specification
  qicli validate cli.spec.yaml`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidateCommand(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidateCommand(path string, out, errOut io.Writer) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(errOut, "Error: file not found: %s\n", path)
		return &exitError{code: ExitInvalidArguments}
	}

	assembled, err := spec.Load(path)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return &exitError{code: ExitInvalidArguments}
	}

	validators, err := schema.InitDefault()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return &exitError{code: ExitMissingDependencies}
	}

	res, err := resolver.New(assembled, validators)
	if err != nil {
		var verr *resolver.ValidationError
		if goerrors.As(err, &verr) {
			printViolations(errOut, path, verr.Violations)
			return &exitError{code: ExitValidationFailed}
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return &exitError{code: ExitValidationFailed}
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s %s is valid\n", green("✓"), path)
	fmt.Fprintf(out, "\nSummary:\n")
	fmt.Fprintf(out, "  system commands: %d\n", len(res.MasterInfo().SystemCommandNames()))
	fmt.Fprintf(out, "  param commands: %d\n", len(res.MasterInfo().ParamCommandNames()))
	fmt.Fprintf(out, "  user commands: %d\n", len(res.MasterInfo().UserCommandNames()))
	return nil
}

func printViolations(errOut io.Writer, path string, violations []schema.Violation) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(errOut, "%s %s has %d violation(s)\n\n", red("✗"), path, len(violations))
	for i, v := range violations {
		fmt.Fprintf(errOut, "Violation %d:\n", i+1)
		if v.Path != "" {
			fmt.Fprintf(errOut, "  Path: %s\n", v.Path)
		}
		fmt.Fprintf(errOut, "  Message: %s\n", v.Message)
		fmt.Fprintln(errOut)
	}
}
