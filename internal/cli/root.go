// Package cli wires the qicli command tree. Each command lives in its
// own file and registers itself on rootCmd from an init function.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/config"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/errors"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "qicli",
	Short: "Specification-driven interactive CLI for the qi data platform",
	Long: `qicli loads a declarative CLI specification, validates it against the
built-in schema registry, and serves an interactive shell over the
resolved commands.

A specification declares three command categories:
  system commands  - built in, non-overridable: quit, ?, param
  param commands   - commands with named, typed, defaultable parameters
  user commands    - parameterless commands classified by name and title`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
}

// Execute runs the command tree. Structured CLIErrors are rendered with
// category and remediation; anything else prints plainly.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else if _, ok := err.(*exitError); !ok {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadConfig loads the tool configuration and applies global switches.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check .qicli/config.yml and ~/.config/qicli/config.yml",
			"Unset QICLI_* variables to fall back to file values",
		)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}
