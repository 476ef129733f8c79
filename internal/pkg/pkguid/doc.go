// Package pkguid provides helpers for generating unique identifiers, used
// here for request correlation IDs. Either UUIDv7 strings or Snowflake
// numbers can back the StringID interface.
package pkguid
