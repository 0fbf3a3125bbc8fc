// Package logger provides structured logging for the localization toolkit.
//
// It extends log/slog with context-based attribute injection and optional
// Sentry mirroring. Extractors pull request-scoped values (request ID,
// resolved locale) out of context on every log call, so translation
// diagnostics emitted deep inside the engine carry the request they belong
// to without any plumbing.
//
//	log := logger.New(
//		middlewares.RequestIDLogExtractor(),
//		middlewares.LocaleLogExtractor(),
//	)
//	log.WarnContext(ctx, "translation key not found", slog.String("key", key))
//
// NewWithSentry mirrors warnings and errors to Sentry when a DSN is
// configured and degrades to stdout-only logging when it is not, so the same
// code path works in development and production.
package logger
