// Package logger builds *slog.Logger values with functional options and
// context-aware attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(logger.ParseEnvironment(cfg.AppEnv), "authform"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Context extractors run for every record, so values stored in a request
// context, such as the request id, show up in all logs written with
// InfoContext and friends. Middleware writes one access log record per
// request.
package logger
