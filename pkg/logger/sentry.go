package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"         yaml:"dsn"`
	Environment string `env:"SENTRY_ENVIRONMENT" yaml:"environment"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `yaml:"-"`
}

// NewWithSentry creates a logger that writes to w and reports to Sentry.
// If DSN is empty, only w is used (graceful fallback for local runs).
// Redaction applies before records reach either destination.
func NewWithSentry(w io.Writer, cfg Config, sentryCfg SentryConfig) (*slog.Logger, error) {
	base, err := newBaseHandler(w, cfg)
	if err != nil {
		return nil, err
	}

	if sentryCfg.DSN == "" {
		return slog.New(NewRedactingHandler(base)), nil
	}

	environment := sentryCfg.Environment
	if environment == "" {
		environment = "production"
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sentryCfg.DSN,
		Environment: environment,
		EnableLogs:  true,
	}); err != nil {
		// Keep logging locally if Sentry cannot be initialised.
		slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewRedactingHandler(base)), nil
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sentryCfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewRedactingHandler(newMultiHandler(base, sentryHandler))), nil
}
