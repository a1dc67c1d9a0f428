package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/testutil"
)

func TestCommandUsageSystem(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.EmptySpec())

	tests := map[string]string{
		"quit":  "quit: quit cli",
		"?":     "?: display help message",
		"param": "param: get/set/reset parameters",
	}
	for name, want := range tests {
		got, err := res.CommandUsage(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCommandUsageParam(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.MarketSpec())
	got, err := res.CommandUsage("cryptocompare")
	require.NoError(t, err)

	want := "cryptocompare [run|set|ls] [args]\n" +
		" -s, --source: select source\n" +
		" -i, --interval: select candle interval\n" +
		paramUsageFooter
	assert.Equal(t, want, got)
}

func TestCommandUsageUser(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.MarketSpec())
	got, err := res.CommandUsage("markets")
	require.NoError(t, err)
	assert.Equal(t, "list configured markets", got)
}

func TestCommandUsageAbsent(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.MarketSpec())
	_, err := res.CommandUsage("nope")
	require.Error(t, err)

	unknown, ok := err.(*UnknownCommandError)
	require.True(t, ok, "expected UnknownCommandError, got %T", err)
	assert.Equal(t, "nope", unknown.Name)
}
