package testutil

import (
	"github.com/zhifengzhang-sz/qi-v2-dp/internal/spec"
)

// MarketSpec returns an assembled specification exercising every command
// category: one param command with two parameters and two user commands.
// Tests across packages share it so derivations stay comparable.
func MarketSpec() *spec.CliSpecification {
	user := &spec.UserSpec{Prompt: "qi>"}
	user.Cmd.ParamCmd = []spec.ParamCommand{
		{
			Name:  "cryptocompare",
			Title: "cryptocompare market data",
			Usage: "cryptocompare [run|set|ls] [args]",
			Params: []spec.ParamDefinition{
				{
					Name:          "source",
					Option:        &spec.Option{Type: "string", ShortFlag: "s", DefaultValue: "binance"},
					AllowedValues: []string{"binance", "kraken", "coinbase"},
					Title:         "data source",
					Usage:         "select source",
					Class:         spec.ClassInfo,
				},
				{
					Name:   "interval",
					Option: &spec.Option{Type: "string", ShortFlag: "i", DefaultValue: "1m"},
					Title:  "candle interval",
					Usage:  "select candle interval",
					Class:  spec.ClassInfo,
				},
			},
		},
	}
	user.Cmd.UserCmd = []spec.UserCommand{
		{Name: "markets", Title: "list configured markets", Class: spec.ClassInfo},
		{Name: "refresh", Title: "refresh market snapshots", Class: spec.ClassExec},
	}
	return spec.Assemble(user)
}

// EmptySpec returns an assembled specification with no user-authored
// commands, only the built-in system commands.
func EmptySpec() *spec.CliSpecification {
	return spec.Assemble(&spec.UserSpec{Prompt: "qi>"})
}
