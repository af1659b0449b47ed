// Package logger builds *slog.Logger instances for the portal.
//
// New takes functional options that pick the output format and level,
// attach static attributes, and register ContextExtractor callbacks that
// inject request-scoped values (such as the request id) on every log call
// through LogHandlerDecorator.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor),
//	)
//	log.InfoContext(ctx, "request submitted",
//		logger.RequestType("desafiliacion"),
//		logger.RUT("12.345.678-5"),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// RUT masks the identifier so logs never carry a full national id.
package logger
