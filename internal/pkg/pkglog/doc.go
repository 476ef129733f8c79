// Package pkglog configures the process-wide slog logger.
//
// Records are JSON with ts, severity and file keys, and carry the service
// name plus the request correlation ID when one is stored in the context.
package pkglog
