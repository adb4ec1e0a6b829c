package main

import (
	"os"

	"github.com/rmera/golewis/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
