package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage qicli configuration",
	Long: `Manage qicli configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (QICLI_*)
  2. Project config (.qicli/config.yml)
  3. User config (~/.config/qicli/config.yml)
  4. Built-in defaults`,
}

var configShowCmd = &cobra.Command{
	Use:           "show",
	Short:         "Show the effective configuration",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printConfig(cfg, cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:           "path",
	Short:         "Show the configuration file locations",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if userPath, err := config.UserConfigPath(); err == nil {
			fmt.Fprintf(out, "user:    %s\n", userPath)
		}
		fmt.Fprintf(out, "project: %s\n", config.ProjectConfigPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:           "init",
	Short:         "Print a commented configuration template",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func printConfig(cfg *config.Configuration, out io.Writer) error {
	fmt.Fprintf(out, "spec_path: %s\n", cfg.SpecPath)
	fmt.Fprintf(out, "prompt: %s\n", cfg.Prompt)
	fmt.Fprintf(out, "no_color: %t\n", cfg.NoColor)
	fmt.Fprintf(out, "history_enabled: %t\n", cfg.HistoryEnabled)
	fmt.Fprintf(out, "max_history_entries: %d\n", cfg.MaxHistoryEntries)
	fmt.Fprintf(out, "state_dir: %s\n", cfg.StateDir)
	fmt.Fprintf(out, "command_timeout: %d\n", cfg.CommandTimeout)
	return nil
}
