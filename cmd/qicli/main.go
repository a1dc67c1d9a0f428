package main

import (
	"os"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
