package slogbridge

import "github.com/rs/zerolog"

// Level mirrors slog numeric semantics and extends with Trace (-8) and
// Critical (12). Values between the named rungs are permitted and clamp
// upward to the nearest rung when mapped onto the sink's scale.
type Level int

const (
	LevelTrace    Level = -8
	LevelDebug    Level = -4
	LevelInfo     Level = 0
	LevelWarn     Level = 4
	LevelError    Level = 8
	LevelCritical Level = 12
)

func (l Level) String() string {
	switch {
	case l <= LevelTrace:
		return "trace"
	case l <= LevelDebug:
		return "debug"
	case l <= LevelInfo:
		return "info"
	case l <= LevelWarn:
		return "warn"
	case l <= LevelError:
		return "error"
	default:
		return "critical"
	}
}

// toZerologLevel maps the six source rungs onto zerolog's five. The
// mapping is total and monotone; Critical and Error collapse onto
// zerolog.ErrorLevel because the sink scale has one fewer rung.
func toZerologLevel(l Level) zerolog.Level {
	switch {
	case l <= LevelTrace:
		return zerolog.TraceLevel
	case l <= LevelDebug:
		return zerolog.DebugLevel
	case l <= LevelInfo:
		return zerolog.InfoLevel
	case l <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
