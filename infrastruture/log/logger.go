// Package logger provides named, colour-prefixed component loggers.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/sirupsen/logrus"
)

var _ i.Logger = &Logger{}

// Logger writes structured entries tagged with the component that produced them.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger whose entries carry prefix, rendered in color, as the
// component field.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     color != "",
		TimestampFormat: "2006-01-02 15:04:05",
	})

	component := prefix
	if color != "" {
		component = color + prefix + ColorReset
	}

	return &Logger{entry: base.WithField("component", component)}, nil
}

// With returns a child logger that adds key=value to every entry.
func (l *Logger) With(key string, value any) i.Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}
