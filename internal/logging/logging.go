// Package logging routes diagnostic output to a log file.
//
// The terminal belongs to the TUI, so nothing is ever written to stdout or
// stderr. Until Setup succeeds every helper discards its input.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options configures the logger.
type Options struct {
	Level string // logrus level name, default "info"
	File  string // log file path; empty disables logging
	JSON  bool
}

var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup opens the log file and configures level and format.
// It returns a close function that must be called on exit.
func Setup(opts Options) (func() error, error) {
	if opts.File == "" {
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)
	configure(l, opts)
	logger = l

	return func() error {
		logger = newDiscard()
		return f.Close()
	}, nil
}

// UseWriter points the logger at w. Tests use it to capture output.
func UseWriter(w io.Writer, opts Options) {
	l := logrus.New()
	l.SetOutput(w)
	configure(l, opts)
	logger = l
}

func configure(l *logrus.Logger, opts Options) {
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// WithField returns an entry carrying a single field.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }

func Warnf(format string, args ...any) { logger.Warnf(format, args...) }
