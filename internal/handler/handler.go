// Package handler is the first layer after the router.
//
// Each endpoint is a typed function wrapped by Handle: the request is
// bound into a fresh payload, validated, passed to the agent, customer
// or order service, and the result written as JSON. Errors go back to
// the global error handler untouched.
package handler
