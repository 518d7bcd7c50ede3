// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which adds attributes pulled from the
// record's context (for example the run ID of a CLI invocation).
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "formcheck"),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "validated", logger.Schema(path), logger.Duration(d))
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// without a nil check.
package logger
