// Package logger builds *slog.Logger instances with functional options and a
// handful of attribute helpers used across stuffkit.
//
// Loggers are constructed explicitly and passed to the components that need
// them; there is no package level tag or on/off switch. A tag is attached as
// a static "tag" attribute, and a disabled logger simply discards records:
//
//	log := logger.New(
//	    logger.WithTag("chunker"),
//	    logger.WithEnabled(cfg.LogEnabled),
//	    logger.WithEnvironment(cfg.Env, "stuffkit"),
//	)
//	log.Info("chunked batch", logger.Index(3), logger.Weight(42))
//
// # Priorities
//
// Priority mirrors the classic verbose/debug/info/warn/error/assert ladder and
// maps it onto slog levels, with LevelVerbose below debug and LevelAssert
// above error. Use Log to emit a record at a Priority.
//
// # Context values
//
// WithContextExtractors and WithContextValue register callbacks that pull
// attributes from the context on every record, e.g. the request id set by the
// requestid middleware.
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
