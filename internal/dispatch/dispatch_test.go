package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/zhifengzhang-sz/qi-v2-dp/internal/errors"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/testutil"
)

func newDispatcher(t *testing.T, runner Runner) *Dispatcher {
	t.Helper()
	return New(newResolver(t, testutil.MarketSpec()), runner, time.Second)
}

func TestRunParam(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args    []string
		wantOK  bool
		wantOut string
	}{
		"set": {
			args:   []string{"set", "source", "kraken"},
			wantOK: true, wantOut: "cryptocompare.source = kraken",
		},
		"get default": {
			args:   []string{"get", "interval"},
			wantOK: true, wantOut: "cryptocompare.interval = 1m",
		},
		"reset": {
			args:   []string{"reset", "source"},
			wantOK: true, wantOut: "cryptocompare.source reset to default",
		},
		"invalid arity": {
			args:   []string{"set", "source"},
			wantOK: false, wantOut: "set takes 2 argument(s)",
		},
		"disallowed value": {
			args:   []string{"set", "source", "bitfinex"},
			wantOK: false, wantOut: "not allowed",
		},
		"unknown parameter": {
			args:   []string{"get", "nope"},
			wantOK: false, wantOut: `has no parameter "nope"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := newDispatcher(t, &testutil.RecordingRunner{})
			out, ok := d.RunParam("cryptocompare", tt.args)
			assert.Equal(t, tt.wantOK, ok)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestRunParamSetThenGet(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, &testutil.RecordingRunner{})

	_, ok := d.RunParam("cryptocompare", []string{"set", "source", "coinbase"})
	require.True(t, ok)

	out, ok := d.RunParam("cryptocompare", []string{"get", "source"})
	require.True(t, ok)
	assert.Equal(t, "cryptocompare.source = coinbase", out)

	_, ok = d.RunParam("cryptocompare", []string{"reset", "source"})
	require.True(t, ok)

	out, ok = d.RunParam("cryptocompare", []string{"get", "source"})
	require.True(t, ok)
	assert.Equal(t, "cryptocompare.source = binance", out)
}

func TestRunUserInfoCommand(t *testing.T) {
	t.Parallel()

	runner := &testutil.RecordingRunner{}
	d := newDispatcher(t, runner)

	out, err := d.RunUser(context.Background(), "markets")
	require.NoError(t, err)
	assert.Equal(t, "list configured markets", out)
	assert.Empty(t, runner.Calls(), "info-class commands must not reach the runner")
}

func TestRunUserExecCommand(t *testing.T) {
	t.Parallel()

	runner := &testutil.RecordingRunner{}
	d := newDispatcher(t, runner)

	out, err := d.RunUser(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []string{"refresh"}, runner.CallNames())
}

func TestRunUserExecFailure(t *testing.T) {
	t.Parallel()

	runner := &testutil.RecordingRunner{Err: errors.New("exit status 2")}
	d := newDispatcher(t, runner)

	_, err := d.RunUser(context.Background(), "refresh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `command "refresh" failed`)
	assert.Contains(t, err.Error(), "exit status 2")
}

func TestRunUserUnknownCommand(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, &testutil.RecordingRunner{})

	_, err := d.RunUser(context.Background(), "nope")
	require.Error(t, err)
	var unknown *resolver.UnknownCommandError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
}

func TestRunUserNotAllowedError(t *testing.T) {
	t.Parallel()

	// Sanity check the error shape the allow-list gate produces.
	err := clierrors.CommandNotAllowed("refresh")
	cliErr := clierrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, clierrors.Runtime, cliErr.Category)
	assert.Contains(t, cliErr.Message, "refresh")
}
