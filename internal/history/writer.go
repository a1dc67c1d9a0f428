package history

import (
	"fmt"
	"os"
	"time"
)

// Writer provides history logging with automatic pruning.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain.
	MaxEntries int
	// SessionID is stamped onto every entry this writer logs.
	SessionID string
}

// NewWriter creates a new history writer for one shell session.
func NewWriter(stateDir string, maxEntries int, sessionID string) *Writer {
	return &Writer{
		StateDir:   stateDir,
		MaxEntries: maxEntries,
		SessionID:  sessionID,
	}
}

// LogEntry adds a new entry to the history file.
// It loads the existing history, appends the new entry, prunes if needed, and saves.
// Errors are non-fatal: they are written to stderr and don't cause command failures.
func (w *Writer) LogEntry(entry Entry) {
	if err := w.logEntryInternal(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to log history: %v\n", err)
	}
}

func (w *Writer) logEntryInternal(entry Entry) error {
	h, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	h.Entries = append(h.Entries, entry)

	// Prune oldest entries if over limit
	if w.MaxEntries > 0 && len(h.Entries) > w.MaxEntries {
		excess := len(h.Entries) - w.MaxEntries
		h.Entries = h.Entries[excess:]
	}

	if err := Save(w.StateDir, h); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// LogCommand is a convenience method to log one shell command.
func (w *Writer) LogCommand(command string, args []string, outcome, detail string) {
	w.LogEntry(Entry{
		SessionID: w.SessionID,
		Timestamp: time.Now(),
		Command:   command,
		Args:      args,
		Outcome:   outcome,
		Detail:    detail,
	})
}
