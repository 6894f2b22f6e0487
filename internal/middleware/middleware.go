// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, New Relic tracing
// and panic recovery, plus the error handler every failure
// funnels into.
package middleware
