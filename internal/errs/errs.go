// Package errs define custom error types and utilities.
//
// Its purpose is to give every failure leaving the HTTP layer one
// consistent shape, so clients always receive {"error": "<message>"}
// with a meaningful status code.
package errs
