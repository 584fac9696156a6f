package main

import (
	"os"

	"github.com/nebula-os/devtools/cmd/osdev/commands"
	"github.com/nebula-os/devtools/internal/utils/logger"
)

func main() {
	err := commands.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
