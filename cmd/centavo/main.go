package main

import (
	"os"

	"github.com/centavo-dev/centavo/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
