// Package pkgroutine runs named background tasks, such as the HTTP listener,
// under a bounded manager that turns panics into errors and reports every
// task failure from Wait.
package pkgroutine
