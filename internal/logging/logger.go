// Package logging builds the service logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w (stderr when nil) with timestamps enabled.
func New(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jstream",
	})
	l.SetLevel(level)
	return l
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
