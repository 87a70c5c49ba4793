// Package logging configures the process-wide phuslu/log logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/phuslu/log"
)

// Setup replaces log.DefaultLogger. format is "console" or "json"; level is
// any name log.ParseLevel accepts and defaults to info.
func Setup(level, format string) {
	log.DefaultLogger = New(os.Stderr, level, format)
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) log.Logger {
	lvl := log.InfoLevel
	if level != "" {
		lvl = log.ParseLevel(strings.ToLower(level))
	}

	var writer log.Writer = &log.IOWriter{Writer: w}
	if format == "console" {
		writer = &log.ConsoleWriter{Writer: w, ColorOutput: false, QuoteString: true}
	}
	return log.Logger{
		Level:      lvl,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Writer:     writer,
	}
}
