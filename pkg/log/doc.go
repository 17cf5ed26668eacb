// Package log provides the structured logger used by the audit pipelines and the
// pqaudit command.
//
// Loggers are passed explicitly; the package keeps no global state.
//
//	logger := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelDebug})
//	logger.WithName("footprint").Debug("signature measured", "scheme", "Dilithium2", "bytes", 2420)
//
// NoopLogger discards everything and is the default for library callers that do
// not configure a logger.
package log
