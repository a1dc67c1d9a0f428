// Package config provides hierarchical configuration management for qicli
// using koanf. Configuration is loaded with priority: environment
// variables > project config (.qicli/config.yml) > user config
// (~/.config/qicli/config.yml) > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables qicli reads.
const envPrefix = "QICLI_"

// Configuration represents the qicli tool configuration.
type Configuration struct {
	// SpecPath is the CLI specification file loaded at startup.
	// Can be set via QICLI_SPEC_PATH or the --spec flag.
	SpecPath string `koanf:"spec_path"`

	// Prompt overrides the prompt string declared in the specification.
	// Empty means use the specification's own prompt.
	Prompt string `koanf:"prompt"`

	// NoColor disables colored terminal output.
	NoColor bool `koanf:"no_color"`

	// HistoryEnabled controls whether shell sessions are recorded.
	HistoryEnabled bool `koanf:"history_enabled"`

	// MaxHistoryEntries sets the maximum number of history entries to
	// retain. Oldest entries are pruned when the limit is exceeded.
	MaxHistoryEntries int `koanf:"max_history_entries" validate:"gte=0,lte=100000"`

	// StateDir is the directory holding qicli state files (history).
	StateDir string `koanf:"state_dir"`

	// CommandTimeout bounds exec-class user command execution, in
	// seconds. Zero disables the timeout.
	CommandTimeout int `koanf:"command_timeout" validate:"gte=0"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .qicli/config.yml).
	ProjectConfigPath string
	// UserConfigPath overrides the user config path, used by tests.
	UserConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	if err := k.Load(newDefaultsProvider(), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	userPath := opts.UserConfigPath
	if userPath == "" {
		p, err := UserConfigPath()
		if err == nil {
			userPath = p
		}
	}
	if userPath != "" {
		if err := loadFileIfPresent(k, userPath); err != nil {
			return nil, err
		}
	}

	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath()
	}
	if err := loadFileIfPresent(k, projectPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := validateValues(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFileIfPresent layers a YAML config file onto k. A missing file is
// not an error; an unreadable or malformed one is.
func loadFileIfPresent(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// envKeyMapper maps QICLI_SPEC_PATH to spec_path and so on.
func envKeyMapper(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, envPrefix))
}

// validateValues checks struct-tag constraints on the loaded values.
func validateValues(cfg *Configuration) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fieldErr := range fieldErrs {
				return fmt.Errorf("config field %s %s", toSnakeCase(fieldErr.Field()), describeTag(fieldErr))
			}
		}
		return err
	}
	return nil
}

func describeTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fieldErr.Tag())
	}
}

// toSnakeCase converts a CamelCase field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
