package main

import (
	"os"

	"github.com/lazypower/chatforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
