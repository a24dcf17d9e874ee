package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var spanIDs atomic.Uint64

type spanKey struct{}

// Span is an open interval of work. A nil or disabled span ignores every call.
type Span struct {
	t       Tracer
	ev      Event
	started time.Time
}

// Start opens a span under the tracer and parent span found in ctx.
// The returned context makes the new span the parent of later ones.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Level().covers(scope) {
		return ctx, &Span{}
	}
	s := &Span{
		t:       t,
		started: time.Now(),
		ev: Event{
			Scope:  scope,
			Span:   spanIDs.Add(1),
			Parent: parentOf(ctx),
			Name:   name,
		},
	}
	begin := s.ev
	begin.Time, begin.Kind = s.started, KindBegin
	t.Emit(&begin)
	return context.WithValue(ctx, spanKey{}, s.ev.Span), s
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.t == nil {
		return s
	}
	if s.ev.Extra == nil {
		s.ev.Extra = make(map[string]string, 2)
	}
	s.ev.Extra[key] = value
	return s
}

// End closes the span and returns how long it was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.t == nil {
		return 0
	}
	d := time.Since(s.started)
	end := s.ev
	end.Time, end.Kind, end.Detail = time.Now(), KindEnd, detail
	s.t.Emit(&end)
	return d
}

// ID is 0 for spans that are not recorded.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.Span
}

func parentOf(ctx context.Context) uint64 {
	id, _ := ctx.Value(spanKey{}).(uint64)
	return id
}

// Point records an instant event; only debug level keeps it.
func Point(ctx context.Context, name, detail string) {
	t := FromContext(ctx)
	if t.Level() < LevelDebug {
		return
	}
	t.Emit(&Event{Time: time.Now(), Kind: KindPoint, Scope: ScopeStage, Parent: parentOf(ctx), Name: name, Detail: detail})
}

// Failure records err at every level except off.
func Failure(ctx context.Context, name string, err error) {
	t := FromContext(ctx)
	if err == nil || t.Level() == LevelOff {
		return
	}
	t.Emit(&Event{Time: time.Now(), Kind: KindFailure, Scope: ScopeDriver, Parent: parentOf(ctx), Name: name, Detail: err.Error()})
}
