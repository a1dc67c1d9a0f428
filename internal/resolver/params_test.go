package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/testutil"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in    string
		want  Action
		known bool
	}{
		"set":        {in: "set", want: ActionSet, known: true},
		"get":        {in: "get", want: ActionGet, known: true},
		"reset":      {in: "reset", want: ActionReset, known: true},
		"unknown":    {in: "delete", known: false},
		"empty":      {in: "", known: false},
		"uppercased": {in: "SET", known: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseAction(tt.in)
			assert.Equal(t, tt.known, ok)
			if tt.known {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestActionArity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, ActionSet.Arity())
	assert.Equal(t, 1, ActionGet.Arity())
	assert.Equal(t, 1, ActionReset.Arity())
}

func TestValidateParamCommand(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.MarketSpec())

	tests := map[string]struct {
		cmd      string
		args     []string
		want     bool
		wantDiag string
	}{
		"valid set": {
			cmd: "cryptocompare", args: []string{"set", "source", "kraken"},
			want: true,
		},
		"valid get": {
			cmd: "cryptocompare", args: []string{"get", "source"},
			want: true,
		},
		"valid reset": {
			cmd: "cryptocompare", args: []string{"reset", "interval"},
			want: true,
		},
		"set missing value": {
			cmd: "cryptocompare", args: []string{"set", "source"},
			want: false, wantDiag: "set takes 2 argument(s), got 1",
		},
		"get extra argument": {
			cmd: "cryptocompare", args: []string{"get", "source", "extra"},
			want: false, wantDiag: "get takes 1 argument(s), got 2",
		},
		"missing action": {
			cmd: "cryptocompare", args: nil,
			want: false, wantDiag: "missing action",
		},
		"unknown action": {
			cmd: "cryptocompare", args: []string{"delete", "source"},
			want: false, wantDiag: `unknown action "delete"`,
		},
		"unknown command": {
			cmd: "nope", args: []string{"set", "source", "kraken"},
			want: false, wantDiag: `unknown param command "nope"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ok, diag := res.ValidateParamCommand(tt.cmd, tt.args)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Empty(t, diag)
			} else {
				assert.Contains(t, diag, tt.wantDiag)
			}
		})
	}
}

func TestValidateParamCommandLeavesDefaultsUntouched(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.MarketSpec())

	before, ok := res.MasterInfo().Defaults("cryptocompare")
	require.True(t, ok)
	sourceBefore, _ := before.Get("source")

	res.ValidateParamCommand("cryptocompare", []string{"set", "source", "kraken"})

	after, ok := res.MasterInfo().Defaults("cryptocompare")
	require.True(t, ok)
	sourceAfter, _ := after.Get("source")
	assert.Equal(t, sourceBefore, sourceAfter)
	assert.Equal(t, "binance", sourceAfter)
}
