package errors

import "fmt"

// Common error messages for the qicli tool.
// These templates ensure consistent, actionable error messages.

// MissingSpecPath creates an error for a missing spec file argument.
func MissingSpecPath() *CLIError {
	return NewArgumentErrorWithUsage(
		"spec file path is required",
		"qicli shell --spec <path>",
		"Pass the spec file with --spec",
		"Or set spec_path in .qicli/config.yml",
		"Or export QICLI_SPEC_PATH=<path>",
	)
}

// SpecFileNotFound creates an error for a missing spec file.
func SpecFileNotFound(path string) *CLIError {
	return NewSpecError(
		fmt.Sprintf("spec file not found: %s", path),
		"Check that the path is correct",
		"Spec files use the .json, .yml or .yaml extension",
	)
}

// SpecParseError creates an error for a spec file that failed to parse.
func SpecParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Specification,
		fmt.Sprintf("failed to parse spec file: %s", path),
		"Check the file for syntax errors",
		"Validate JSON with: cat "+path+" | jq .",
	)
}

// SpecInvalid creates an error for a spec that failed schema validation.
// Each violation becomes one detail line.
func SpecInvalid(path string, violations []string) *CLIError {
	return NewSpecErrorWithDetails(
		fmt.Sprintf("spec %s failed validation with %d violation(s)", path, len(violations)),
		violations,
		"Fix the listed violations and rerun",
		"Inspect the expected shape with: qicli schema cli/spec.schema",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Remove the file to fall back to defaults",
	)
}

// CommandNotAllowed creates an error for a command outside the
// execution allow-list.
func CommandNotAllowed(name string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("command %q is not in the user command allow-list", name),
		"Only commands declared in user_cmd may be executed",
		"Check declared commands with: ? (inside the shell)",
	)
}

// FileNotWritable creates an error when a file cannot be written.
func FileNotWritable(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}
