// Package logger configures the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. It is replaced by Init.
var Logger = log.Logger

// Config controls the logger output.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Unknown values mean info.
	Level string
	// Format is json (default) or pretty for a colored console writer.
	Format string
	// Location is the time zone used for the "ts" field. Nil means UTC.
	Location *time.Location
}

// Init builds the logger from cfg, writing to stdout, and installs it as both
// Logger and the zerolog global logger.
func Init(cfg Config) {
	var out io.Writer = os.Stdout
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	Logger = New(out, cfg)
	log.Logger = Logger
}

// New returns a logger writing to w without touching the global one.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Info starts an info level event on Logger.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn level event on Logger.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error level event on Logger.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a fatal event on Logger; the process exits after it is sent.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Ctx returns the logger stored in ctx, or Logger when there is none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}
