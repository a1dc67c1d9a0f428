package dispatch

import (
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/briandowns/spinner"
)

// Runner executes an exec-class user command. Implementations are
// injected so the shell and the tests control the side effects.
type Runner interface {
	Run(ctx context.Context, name string) error
}

// ExecRunner runs the command name through the system shell, showing a
// spinner while it runs.
type ExecRunner struct {
	// Out receives the command's combined output.
	Out io.Writer
	// ShowSpinner suppresses the spinner when false (tests, non-TTY).
	ShowSpinner bool
}

// Run executes name via "sh -c". Cancellation and deadlines arrive
// through ctx.
func (r *ExecRunner) Run(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", name)
	cmd.Stdout = r.Out
	cmd.Stderr = r.Out

	if r.ShowSpinner {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " running " + name
		s.Start()
		defer s.Stop()
	}
	return cmd.Run()
}
