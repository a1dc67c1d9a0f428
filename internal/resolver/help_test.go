package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/testutil"
)

func TestHelpMessageEmptySpec(t *testing.T) {
	t.Parallel()

	help := mustResolver(t, testutil.EmptySpec()).HelpMessage()

	want := "System commands\n" +
		" - quit: quit cli\n" +
		" - ?: display help message\n" +
		" - param: get/set/reset parameters\n" +
		"Param commands\n" +
		"Commands without param\n"
	assert.Equal(t, want, help)
}

func TestHelpMessageFullSpec(t *testing.T) {
	t.Parallel()

	help := mustResolver(t, testutil.MarketSpec()).HelpMessage()

	assert.Contains(t, help, " - cryptocompare: cryptocompare market data\n")
	assert.Contains(t, help, " - markets: list configured markets\n")
	assert.Contains(t, help, " - refresh: refresh market snapshots\n")

	// Sections appear in fixed order with system entries first.
	sysIdx := strings.Index(help, "System commands")
	paramIdx := strings.Index(help, "Param commands")
	userIdx := strings.Index(help, "Commands without param")
	require.True(t, sysIdx >= 0 && paramIdx > sysIdx && userIdx > paramIdx,
		"section order wrong in:\n%s", help)
}

func TestHelpMessageStable(t *testing.T) {
	t.Parallel()

	res := mustResolver(t, testutil.MarketSpec())
	assert.Equal(t, res.HelpMessage(), res.HelpMessage())
}
