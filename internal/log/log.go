// Package log provides the leveled project logger handed to every
// subsystem. It is a thin wrapper over logrus so subsystems depend on a
// small printf-style surface instead of a concrete logging framework.
package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	l *logrus.Logger
}

func New(out io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{l: l}
}

// LevelFromString maps a configuration string onto a logrus level,
// defaulting to debug for anything unrecognized.
func LevelFromString(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(s))
	if err != nil {
		return logrus.DebugLevel
	}
	return lvl
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.l.Debugf(format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.l.Infof(format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.l.Warnf(format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.l.Errorf(format, v...) }
func (l *Logger) Fatalf(format string, v ...interface{}) { l.l.Fatalf(format, v...) }

func (l *Logger) SetLevel(level logrus.Level) { l.l.SetLevel(level) }
func (l *Logger) Level() logrus.Level         { return l.l.GetLevel() }
