// Package validation contains the logic for binding and
// validating request data.
//
// Request types validate themselves; this package binds them
// with echo and turns any failure into a 400 the client can
// understand.
package validation
