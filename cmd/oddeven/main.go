// Command oddeven sorts a list of integers with a parallel odd-even
// transposition sort and reports the time taken.
//
// Usage:
//
//	oddeven <n> <g|i> <threads> [flags]
//	oddeven --size n --source g|i --threads t [flags]
//
// With source g the list is generated from a seeded random number generator,
// with source i it is read from standard input.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	})); err != nil {
		logger.Warn().Err(err).Msg("could not adjust GOMAXPROCS to the CPU quota")
	}

	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
