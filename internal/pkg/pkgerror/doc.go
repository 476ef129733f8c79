// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It keeps error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a message, type, code
//     and optional field details, mapped to HTTP status codes at the edge.
package pkgerror
