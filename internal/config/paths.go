package config

import (
	"os"
	"path/filepath"
	"strings"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/qicli/config.yml
// - macOS: ~/Library/Application Support/qicli/config.yml
// - Windows: %APPDATA%\qicli\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "qicli", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .qicli/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".qicli", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".qicli"
}

// ExpandStateDir resolves a leading ~ in the configured state directory.
func ExpandStateDir(dir string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}
