package spec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// AssemblyError reports a specification file that could not be read or
// parsed. It is startup-fatal: no validation is attempted on a
// specification that failed to assemble.
type AssemblyError struct {
	Path string
	Err  error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("cannot assemble specification from %s: %v", e.Path, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// IsAssemblyError reports whether err is an AssemblyError.
func IsAssemblyError(err error) bool {
	var ae *AssemblyError
	return errors.As(err, &ae)
}

// Load reads a user specification file (JSON or YAML, chosen by
// extension) and assembles it with the built-in system commands.
// A missing file, malformed document, or unsupported extension returns
// an AssemblyError.
func Load(path string) (*CliSpecification, error) {
	user, err := LoadUserSpec(path)
	if err != nil {
		return nil, err
	}
	return Assemble(user), nil
}

// LoadUserSpec reads and parses the user-authored partial specification
// without assembling it.
func LoadUserSpec(path string) (*UserSpec, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &AssemblyError{Path: path, Err: err}
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = kjson.Parser()
	case ".yml", ".yaml":
		// Syntax precheck first: yaml.v3 reports line/column, which
		// koanf's parse error does not surface.
		if err := validateYAMLSyntax(path); err != nil {
			return nil, &AssemblyError{Path: path, Err: err}
		}
		parser = kyaml.Parser()
	default:
		return nil, &AssemblyError{
			Path: path,
			Err:  fmt.Errorf("unsupported spec format %q (expected .json, .yml or .yaml)", filepath.Ext(path)),
		}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, &AssemblyError{Path: path, Err: err}
	}

	var user UserSpec
	if err := k.Unmarshal("", &user); err != nil {
		return nil, &AssemblyError{Path: path, Err: err}
	}
	return &user, nil
}

// validateYAMLSyntax decodes the document into a yaml.Node to catch
// syntax errors with line information before koanf flattens the data.
func validateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("spec file is empty")
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%s", strings.Join(typeErr.Errors, "; "))
		}
		return err
	}
	return nil
}
