package main

import (
	"os"

	"github.com/mindjuice/mindjuice/cli"
)

func main() {
	os.Exit(cli.Run())
}
