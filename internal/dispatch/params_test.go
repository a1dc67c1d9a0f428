package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/resolver"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/schema"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/testutil"
)

func newResolver(t *testing.T, s *spec.CliSpecification) *resolver.Resolver {
	t.Helper()
	validators, err := schema.InitDefault()
	require.NoError(t, err)
	res, err := resolver.New(s, validators)
	require.NoError(t, err)
	return res
}

func newStore(t *testing.T) *ParamStore {
	t.Helper()
	res := newResolver(t, testutil.MarketSpec())
	return NewParamStore(res.Spec(), res.MasterInfo())
}

func TestParamStoreGetFallsBackToDefault(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	value, err := store.Get("cryptocompare", "source")
	require.NoError(t, err)
	assert.Equal(t, "binance", value)

	value, err = store.Get("cryptocompare", "interval")
	require.NoError(t, err)
	assert.Equal(t, "1m", value)
}

func TestParamStoreSetGetReset(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	require.NoError(t, store.Set("cryptocompare", "source", "kraken"))
	value, err := store.Get("cryptocompare", "source")
	require.NoError(t, err)
	assert.Equal(t, "kraken", value)

	// Other parameters are unaffected.
	value, err = store.Get("cryptocompare", "interval")
	require.NoError(t, err)
	assert.Equal(t, "1m", value)

	require.NoError(t, store.Reset("cryptocompare", "source"))
	value, err = store.Get("cryptocompare", "source")
	require.NoError(t, err)
	assert.Equal(t, "binance", value)
}

func TestParamStoreRejectsDisallowedValue(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	err := store.Set("cryptocompare", "source", "bitfinex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")

	// The failed set must not clobber the current value.
	value, err := store.Get("cryptocompare", "source")
	require.NoError(t, err)
	assert.Equal(t, "binance", value)
}

func TestParamStoreUnknownLookups(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	tests := map[string]func() error{
		"set unknown command": func() error { return store.Set("nope", "source", "x") },
		"set unknown param":   func() error { return store.Set("cryptocompare", "nope", "x") },
		"reset unknown param": func() error { return store.Reset("cryptocompare", "nope") },
		"get unknown command": func() error {
			_, err := store.Get("nope", "source")
			return err
		},
	}
	for name, call := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, call())
		})
	}
}

func TestParamStoreNeverMutatesDefaults(t *testing.T) {
	t.Parallel()

	res := newResolver(t, testutil.MarketSpec())
	store := NewParamStore(res.Spec(), res.MasterInfo())

	require.NoError(t, store.Set("cryptocompare", "source", "coinbase"))

	defaults, ok := res.MasterInfo().Defaults("cryptocompare")
	require.True(t, ok)
	def, _ := defaults.Get("source")
	assert.Equal(t, "binance", def)
}
