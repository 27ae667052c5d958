// Package logger builds the *slog.Logger used across formkit.
//
// New applies functional options on top of production defaults (JSON output
// at info level) and wraps the handler in LogHandlerDecorator, which adds
// attributes pulled from the context of every call, such as the request ID.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "formkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form rejected",
//	    logger.Form("signup"),
//	    logger.Fields(verrs.Fields()),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty Attr for nil errors, so they can be passed unconditionally.
package logger
