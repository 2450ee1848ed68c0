package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/confix-lang/confix/cli"
	"github.com/confix-lang/confix/log"
)

// exitFailure is the process exit code for any translation or usage error.
const exitFailure = 1

func main() {
	os.Exit(run(os.Args[1:]...))
}

func run(args ...string) int {
	err := cli.Run(context.Background(), os.Exit, args...)
	if err != nil {
		log.Error("run failed", slog.Any("error", err))

		return exitFailure
	}

	return 0
}
