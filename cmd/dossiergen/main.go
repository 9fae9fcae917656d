package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS quietly. Error ignored: maxprocs.Set only fails
	// if the GOMAXPROCS env var is invalid, in which case Go runtime
	// defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := run(os.Args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
