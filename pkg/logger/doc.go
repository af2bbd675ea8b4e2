// Package logger builds slog loggers that never print OAuth credentials.
//
// Every logger returned by this package wraps its handler in a
// RedactingHandler. Attributes named client_secret, code, access_token,
// refresh_token, token or authorization are replaced with [REDACTED], and
// string attributes holding an absolute URL have the same query parameters
// masked, so a token URL can be logged as is:
//
//	log, err := logger.New(os.Stderr, logger.Config{Level: "debug", Format: "text"})
//	if err != nil {
//		return err
//	}
//	log.Debug("token url built", slog.String("url", oauth.BuildTokenURL(req)))
//	// url=https://accounts.google.com/o/oauth2/v2/token?client_id=...&client_secret=%5BREDACTED%5D&code=%5BREDACTED%5D...
//
// # Sentry Integration
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a DSN
// is configured, and falls back to local output otherwise:
//
//	log, err := logger.NewWithSentry(os.Stderr, cfg.Log, logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// Redaction runs before the fan-out, so Sentry never receives secrets either.
package logger
