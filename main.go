package main

import (
	"os"

	"github.com/springpress/create-springpress-app/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute(version, commit, date)))
}
