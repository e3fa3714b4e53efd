package main

import (
	"os"

	"github.com/arthur-debert/fnm-setup/cmd/fnm-setup/commands"
)

func main() {
	os.Exit(commands.Execute(commands.NewRootCmd()))
}
