package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/config"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/history"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent shell commands",
	Long: `Show recent shell commands from the history state file, newest last.
Each line carries the session, command, arguments and outcome.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stateDir := config.ExpandStateDir(cfg.StateDir)
		return runHistoryCommand(stateDir, historyLimitFlag, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of entries to show")
}

func runHistoryCommand(stateDir string, limit int, out io.Writer) error {
	h, err := history.Load(stateDir)
	if err != nil {
		return err
	}
	entries := h.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "no history recorded")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  [%s]  %s", e.Timestamp.Format("2006-01-02 15:04:05"), shortID(e.SessionID), e.Command)
		if len(e.Args) > 0 {
			line += " " + strings.Join(e.Args, " ")
		}
		line += "  (" + e.Outcome + ")"
		fmt.Fprintln(out, line)
	}
	return nil
}

// shortID trims a session UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
