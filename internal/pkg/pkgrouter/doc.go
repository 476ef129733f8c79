// Package pkgrouter is the HTTP edge of the service: an httprouter wrapper
// that writes bare JSON payloads, maps pkgerror values to status codes and
// applies correlation ID, logging and recovery middleware to every route.
package pkgrouter
