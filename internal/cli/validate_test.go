package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

const validSpec = `{
  "prompt": "qi>",
  "cmd": {
    "param_cmd": [
      {
        "name": "cryptocompare",
        "params": [
          {
            "name": "source",
            "option": {"type": "string", "short_flag": "s", "default_value": "binance"},
            "title": "data source",
            "usage": "select source",
            "class": "info"
          }
        ]
      }
    ],
    "user_cmd": [
      {"name": "markets", "title": "list markets", "class": "info"}
    ]
  }
}`

const invalidSpec = `{
  "prompt": "qi>",
  "cmd": {
    "user_cmd": [
      {"name": "markets"}
    ]
  }
}`

func writeSpecFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	tests := map[string]struct {
		path     func(t *testing.T) string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		"valid spec": {
			path: func(t *testing.T) string {
				return writeSpecFile(t, "cli.spec.json", validSpec)
			},
			wantCode: ExitSuccess,
			wantOut:  "is valid",
		},
		"schema violations": {
			path: func(t *testing.T) string {
				return writeSpecFile(t, "cli.spec.json", invalidSpec)
			},
			wantCode: ExitValidationFailed,
			wantErr:  "violation(s)",
		},
		"missing file": {
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.json")
			},
			wantCode: ExitInvalidArguments,
			wantErr:  "file not found",
		},
		"malformed file": {
			path: func(t *testing.T) string {
				return writeSpecFile(t, "bad.json", `{"prompt": `)
			},
			wantCode: ExitInvalidArguments,
			wantErr:  "Error:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := runValidateCommand(tt.path(t), &out, &errOut)

			assert.Equal(t, tt.wantCode, ExitCode(err))
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestValidateSummaryCounts(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runValidateCommand(writeSpecFile(t, "cli.spec.json", validSpec), &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "system commands: 3")
	assert.Contains(t, out.String(), "param commands: 1")
	assert.Contains(t, out.String(), "user commands: 1")
}

func TestValidateViolationReportNamesPaths(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runValidateCommand(writeSpecFile(t, "cli.spec.json", invalidSpec), &out, &errOut)
	require.Error(t, err)

	assert.Contains(t, errOut.String(), "cmd.user_cmd[0]")
	assert.Contains(t, errOut.String(), "required field missing")
}
