package logutil

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func ParseZerologLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewConsoleLogger writes uncolored human-readable lines to out.
func NewConsoleLogger(out io.Writer, level string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:        out,
		TimeFormat: time.DateTime,
		NoColor:    true,
	}

	return zerolog.New(writer).Level(ParseZerologLevel(level)).With().Timestamp().Logger()
}
