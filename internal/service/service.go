// Package service sits between the handlers and the repositories.
//
// It receives validated payloads, runs the repository statement and
// turns "no row matched" into a NotFound error for the agents table.
// Storage errors are passed through unchanged.
package service
