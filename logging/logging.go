// Package logging wraps logrus with the "[APP] [LEVEL] message" line format
// used across the binaries. The bracketed tag comes from the component
// field and the level tag is colored when the output is a terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Level orders log severities. Higher values are more verbose.
type Level = logrus.Level

const (
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelWarn  = logrus.WarnLevel
	LevelError = logrus.ErrorLevel
)

// FieldComponent names the field rendered as the bracketed line tag.
const FieldComponent = "component"

// ParseLevel maps a level name (any case) to a Level. Empty means info.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LevelInfo, nil
	}
	l, err := logrus.ParseLevel(s)
	if err != nil {
		return LevelInfo, fmt.Errorf("logging: %w", err)
	}
	return l, nil
}

// Logger writes leveled lines. The zero value is not usable; use New.
type Logger struct {
	entry *logrus.Entry
}

// New returns a Logger writing to w at the given minimum level. Colors are
// enabled when w is a terminal.
func New(w io.Writer, level Level) *Logger {
	lg := logrus.New()
	lg.SetOutput(w)
	lg.SetLevel(level)
	lg.SetFormatter(&Formatter{Color: isTerminal(w)})
	return &Logger{entry: logrus.NewEntry(lg)}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, logrus.PanicLevel)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// With returns a copy of l tagged with a component name instead of APP.
func (l *Logger) With(component string) *Logger {
	return l.WithField(FieldComponent, component)
}

// WithField returns a copy of l that appends key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Level returns the minimum level that is written.
func (l *Logger) Level() Level { return l.entry.Logger.GetLevel() }

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool { return l.entry.Logger.IsLevelEnabled(level) }

// Writer returns the underlying destination.
func (l *Logger) Writer() io.Writer { return l.entry.Logger.Out }

func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
