// Package history records shell session commands in a JSON state file.
// Recording is best-effort: write failures produce warnings, never
// command failures.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// historyFile is the file name inside the state directory.
const historyFile = "history.json"

// Entry is one recorded shell command.
type Entry struct {
	// SessionID groups the entries of one shell session.
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	// Command is the classified command name (e.g. "param", "markets").
	Command string `json:"command"`
	// Args are the remaining tokens of the input line.
	Args []string `json:"args,omitempty"`
	// Outcome is "ok", "invalid" or "error".
	Outcome string `json:"outcome"`
	// Detail carries the diagnostic for invalid or failed commands.
	Detail string `json:"detail,omitempty"`
}

// History is the persisted state file content.
type History struct {
	Entries []Entry `json:"entries"`
}

// Load reads the history file from the state directory. A missing file
// yields an empty history.
func Load(stateDir string) (*History, error) {
	data, err := os.ReadFile(filepath.Join(stateDir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return &h, nil
}

// Save writes the history file, creating the state directory if needed.
func Save(stateDir string, h *History) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	path := filepath.Join(stateDir, historyFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
