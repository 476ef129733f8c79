// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface so it stays easy to test and
// does not care whether values come from a file, the environment or defaults.
package pkgconfig
