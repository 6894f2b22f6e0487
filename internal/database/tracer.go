package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// multiTracer chains several pgx tracers into the single
// ConnConfig.Tracer slot.
type multiTracer struct {
	tracers []pgx.QueryTracer
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		ctx = tracer.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		tracer.TraceQueryEnd(ctx, conn, data)
	}
}

// slowQueryLogger logs statements that run longer than threshold.
// A zero threshold disables it.
type slowQueryLogger struct {
	log       *zerolog.Logger
	threshold time.Duration
}

func newSlowQueryLogger(logger *zerolog.Logger, threshold time.Duration) *slowQueryLogger {
	return &slowQueryLogger{log: logger, threshold: threshold}
}

func (s *slowQueryLogger) enabled() bool {
	return s != nil && s.log != nil && s.threshold > 0
}

func (s *slowQueryLogger) observe(sql string, elapsed time.Duration, err error) {
	if !s.enabled() || elapsed < s.threshold {
		return
	}

	event := s.log.Warn()
	if err != nil {
		event = event.Err(err)
	}

	event.
		Str("sql", sql).
		Dur("duration", elapsed).
		Dur("threshold", s.threshold).
		Msg("slow query")
}

type slowQueryStartKey struct{}

type slowQueryStart struct {
	sql     string
	started time.Time
}

// slowQueryTracer feeds pgx statement timings into a slowQueryLogger.
type slowQueryTracer struct {
	slow *slowQueryLogger
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryStartKey{}, slowQueryStart{sql: data.SQL, started: time.Now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryStartKey{}).(slowQueryStart)
	if !ok {
		return
	}
	t.slow.observe(start.sql, time.Since(start.started), data.Err)
}
