// Package logging defines the logging collaborator passed through the
// manifest builder into constructed extension modules. The builder never
// reaches for a global logger; callers inject one or get the no-op default.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the printf-style logging surface forwarded to extensions.
// *zap.SugaredLogger satisfies it directly.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

// NewZap builds a development-style zap logger at the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func NewZap(level string) Logger {
	cfg := zap.NewDevelopmentConfig()
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return Nop()
	}
	return l.Sugar()
}
