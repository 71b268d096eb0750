// Package logtrace provides logging and tracing utilities for the SDK.
// It integrates with zerolog for structured logging and carries the tracing
// headers the dialog manager sends with every invoke request.
package logtrace

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger. The format is either "json" for
// machine-readable output or "human" for console output during development.
// Unknown levels default to info.
//
// The level is set on the logger itself rather than via zerolog's global
// level, so a per-request logger derived from it can still be promoted to
// debug by the request middleware.
func InitLogger(format, level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == "human" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
