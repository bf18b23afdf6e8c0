// Package log provides slog loggers that redact credentials.
//
// The SecureHandler masks attribute values whose key names a credential
// (api-key, authorization, AZ_OPENAI_KEY and similar), values that look
// like bearer tokens or long API keys, and passwords embedded in URLs.
// Masking applies at every log level, so verbose output is as safe to
// share as the default.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("sending judge request", "api-key", key) // api-key=***REDACTED***
package log
