// Package applog configures the process-wide zerolog logger used by
// every oceanroute subcommand: a console writer for interactive runs,
// with level controlled by internal/config's log_level setting.
package applog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the global logger at the given level ("debug", "info",
// "warn", "error"; unrecognized values fall back to "info").
func Init(level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
