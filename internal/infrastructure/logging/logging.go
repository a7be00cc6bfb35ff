package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger: JSON by default, console format when
// LOG_FORMAT=console.
func New(service string, level zerolog.Level, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(level)
}

func ParseLevel(value string) zerolog.Level {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(s); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
