// Package logger builds slog loggers and provides attribute helpers for
// consistent structured logging.
//
//	log := logger.New(
//		logger.WithProduction("doccms"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(requestIDFromContext),
//	)
//	log.Info("document created",
//		logger.Component("cms"),
//		logger.Event("document.created"),
//		logger.Document(name),
//	)
//
// Helpers return an empty slog.Attr for empty inputs, which slog drops.
package logger
