package abi

import "github.com/rs/zerolog"

// Logger is the ambient logging seam for this package: an adapter so
// callers can plug in their own zerolog.Logger (or none at all) without
// this package importing a concrete sink.
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string)                       {}
func (noopLogger) Debugf(string, ...interface{})      {}
func (noopLogger) Info(string)                        {}
func (noopLogger) Infof(string, ...interface{})       {}
func (noopLogger) Warn(string)                        {}
func (noopLogger) Warnf(string, ...interface{})       {}
func (noopLogger) Error(string)                       {}
func (noopLogger) Errorf(string, ...interface{})      {}

// NoopLogger returns a Logger that discards everything, the default for
// callers who don't care about manager-level diagnostics.
func NoopLogger() Logger { return noopLogger{} }

// zerologLogger adapts a zerolog.Logger to this package's Logger interface.
type zerologLogger struct{ l zerolog.Logger }

// NewZerologLogger wraps l as a Logger.
func NewZerologLogger(l zerolog.Logger) Logger { return &zerologLogger{l: l} }

func (z *zerologLogger) Debug(msg string)  { z.l.Debug().Msg(msg) }
func (z *zerologLogger) Info(msg string)   { z.l.Info().Msg(msg) }
func (z *zerologLogger) Warn(msg string)   { z.l.Warn().Msg(msg) }
func (z *zerologLogger) Error(msg string)  { z.l.Error().Msg(msg) }

func (z *zerologLogger) Debugf(format string, args ...interface{}) { z.l.Debug().Msgf(format, args...) }
func (z *zerologLogger) Infof(format string, args ...interface{})  { z.l.Info().Msgf(format, args...) }
func (z *zerologLogger) Warnf(format string, args ...interface{})  { z.l.Warn().Msgf(format, args...) }
func (z *zerologLogger) Errorf(format string, args ...interface{}) { z.l.Error().Msgf(format, args...) }
