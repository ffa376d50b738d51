// Package session wires the evaluator core to the host's tracing and
// logging stack, mirroring the *sql.Context pattern the teacher uses
// to thread an opentracing.Tracer and a logrus entry through every
// call without a global.
package session

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Session exposes the ambient facilities the evaluator needs from its
// host: a clock for CURRENT_TIME/CURRENT_DATE/CURRENT_TIMESTAMP, a
// tracer for span-per-Eval-call instrumentation, and a logger.
type Session interface {
	Now() time.Time
	Tracer() opentracing.Tracer
	Logger() *logrus.Entry
}

// Context embeds context.Context and Session the way the teacher's
// sql.Context embeds context.Context alongside a *Session, so the
// evaluator can accept a single argument that is both cancelable and
// session-aware.
type Context struct {
	context.Context
	Session
}

// NewContext wraps a Go context with a Session.
func NewContext(ctx context.Context, sess Session) *Context {
	return &Context{Context: ctx, Session: sess}
}

// Span starts a child span named name and returns it along with a
// Context carrying the span's own context.Context, mirroring
// (*sql.Context).Span. Callers must call span.Finish().
func (c *Context) Span(name string) (opentracing.Span, *Context) {
	span, spanCtx := opentracing.StartSpanFromContextWithTracer(c.Context, c.Tracer(), name)
	return span, &Context{Context: spanCtx, Session: c.Session}
}

// BasicSession is a minimal Session backed by the real clock, a
// no-op tracer, and a caller-supplied logger. Hosts that don't need
// distributed tracing can use it directly instead of implementing
// Session themselves.
type BasicSession struct {
	log *logrus.Entry
}

// NewBasicSession builds a BasicSession. If log is nil, a
// logrus.StandardLogger entry is used.
func NewBasicSession(log *logrus.Entry) *BasicSession {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &BasicSession{log: log}
}

func (s *BasicSession) Now() time.Time { return time.Now() }

func (s *BasicSession) Tracer() opentracing.Tracer { return opentracing.NoopTracer{} }

func (s *BasicSession) Logger() *logrus.Entry { return s.log }
