// Package logger provides a small factory and attribute helpers around
// log/slog. Services across sessionkit accept a *slog.Logger through
// functional options and default to a discard handler; applications build
// their real logger here.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	)
//	log.Info("session resolved", logger.Component("session"))
package logger
