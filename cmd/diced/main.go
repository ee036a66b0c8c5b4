package main

import (
	"os"

	"github.com/axelarnetwork/dicegame/cmd/diced/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
