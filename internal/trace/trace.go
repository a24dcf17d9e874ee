package trace

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Tracer receives events. Emit must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
	// Close flushes buffered output and releases the sink.
	Close() error
}

type nop struct{}

func (nop) Emit(*Event)  {}
func (nop) Level() Level { return LevelOff }
func (nop) Close() error { return nil }

// Nop drops everything.
var Nop Tracer = nop{}

// Config describes where and how much to trace.
type Config struct {
	Level  Level
	Format Format    // FormatAuto picks by Path extension
	Output io.Writer // wins over Path
	Path   string    // "" or "-" is stderr
	RunID  string
}

// New returns Nop for LevelOff, a writer-backed tracer otherwise.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	f := cfg.Format
	if f == FormatAuto {
		f = FormatText
		if filepath.Ext(cfg.Path) == ".ndjson" {
			f = FormatNDJSON
		}
	}

	w := cfg.Output
	switch {
	case w != nil:
	case cfg.Path == "" || cfg.Path == "-":
		w = os.Stderr
	default:
		file, err := os.Create(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("trace output: %w", err)
		}
		w = file
	}
	tw := NewWriter(w, cfg.Level, f)
	tw.run = cfg.RunID
	return tw, nil
}

type tracerKey struct{}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx; nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}
