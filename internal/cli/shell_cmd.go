package cli

import (
	goerrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/config"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/dispatch"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/errors"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/history"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/schema"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/shell"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

var shellSpecFlag string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell over a CLI specification",
	Long: `Load a CLI specification, validate it, and serve an interactive shell
over the resolved commands.

Inside the shell:
  quit                          end the session
  ?                             show all commands
  ? <command>                   show one command's usage
  param <cmd> set <name> <val>  set a parameter
  param <cmd> get <name>        show a parameter (default until set)
  param <cmd> reset <name>      restore a parameter's default
  <user command>                run a declared command

The specification is loaded once; editing the file during a session
prints a notice but never swaps the running specification.`,
	Example: `  # Use the spec from configuration (spec_path / QICLI_SPEC_PATH)
  qicli shell

  # Use an explicit spec file
  qicli shell --spec cli.spec.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShellCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVar(&shellSpecFlag, "spec", "", "Path to the CLI specification file")
}

func runShellCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	specPath := shellSpecFlag
	if specPath == "" {
		specPath = cfg.SpecPath
	}
	if specPath == "" {
		return errors.MissingSpecPath()
	}

	res, err := resolveSpec(specPath)
	if err != nil {
		return err
	}

	runner := &dispatch.ExecRunner{Out: cmd.OutOrStdout(), ShowSpinner: !cfg.NoColor}
	disp := dispatch.New(res, runner, time.Duration(cfg.CommandTimeout)*time.Second)

	var writer *history.Writer
	if cfg.HistoryEnabled {
		stateDir := config.ExpandStateDir(cfg.StateDir)
		writer = history.NewWriter(stateDir, cfg.MaxHistoryEntries, uuid.NewString())
	}

	session := shell.New(res, disp, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
		Prompt:   cfg.Prompt,
		SpecPath: specPath,
		History:  writer,
	})
	return session.Run(cmd.Context())
}

// resolveSpec performs the startup sequence: load, assemble, compile the
// registry, validate, derive. Every failure here is fatal; no partially
// initialized resolver escapes.
func resolveSpec(path string) (*resolver.Resolver, error) {
	assembled, err := spec.Load(path)
	if err != nil {
		return nil, errors.SpecParseError(path, err)
	}

	validators, err := schema.InitDefault()
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"The schema registry is fixed; this indicates a build problem",
		)
	}

	res, err := resolver.New(assembled, validators)
	if err != nil {
		var verr *resolver.ValidationError
		if goerrors.As(err, &verr) {
			details := make([]string, 0, len(verr.Violations))
			for _, v := range verr.Violations {
				details = append(details, v.String())
			}
			return nil, errors.SpecInvalid(path, details)
		}
		return nil, errors.Wrap(err, errors.Specification)
	}
	return res, nil
}
