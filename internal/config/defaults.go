package config

import (
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# qicli Configuration
# See 'qicli config show' for effective values

spec_path: ""                 # CLI specification file (.json, .yml or .yaml)
prompt: ""                    # Override the spec's prompt string (empty = use spec)
no_color: false               # Disable colored output
history_enabled: true         # Record shell sessions in the history file
max_history_entries: 500      # Max history entries to retain
state_dir: ~/.qicli/state     # Directory for state files
command_timeout: 300          # Exec command timeout in seconds (0 = no timeout)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"spec_path":       "",
		"prompt":          "",
		"no_color":        false,
		"history_enabled": true,
		// max_history_entries: oldest entries are pruned past this.
		"max_history_entries": 500,
		"state_dir":           "~/.qicli/state",
		// command_timeout: 5 minutes default, 0 disables the timeout.
		"command_timeout": 300,
	}
}

// newDefaultsProvider wraps the defaults map in a koanf provider.
func newDefaultsProvider() koanf.Provider {
	return confmap.Provider(GetDefaults(), ".")
}
