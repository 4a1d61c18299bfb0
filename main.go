package main

import (
	"os"

	"github.com/idelchi/rmdir/internal/cli"
	"github.com/idelchi/rmdir/internal/exitcodes"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(exitcodes.Failure)
	}

	os.Exit(exitcodes.Success)
}
