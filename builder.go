package slogbridge

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"
)

const defaultTimestampKey = "ts"

// ErrNoSink is returned by Builder.Build when no sink logger was provided.
var ErrNoSink = errors.New("slogbridge: no sink configured")

// Builder separates construction from representation (Builder pattern).
// Configuration is explicit and code-first: no envs, no hidden init.
type Builder struct {
	sink     zerolog.Logger
	hasSink  bool
	opaqueKV bool
	clock    xclock.Clock
	tsKey    string
}

func NewBuilder() *Builder {
	return &Builder{tsKey: defaultTimestampKey}
}

// WithSink sets the zerolog logger events are emitted into.
func (b *Builder) WithSink(l zerolog.Logger) *Builder {
	b.sink = l
	b.hasSink = true
	return b
}

// WithOpaqueKV switches the payload serializer into opaque mode: the
// whole ordered payload collapses into one slog.kv field instead of
// discrete per-key fields.
func (b *Builder) WithOpaqueKV(on bool) *Builder {
	b.opaqueKV = on
	return b
}

// WithClock overrides the timestamp source; defaults to the process
// clock (xclock.Default()), so frozen/offset clocks are respected.
func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.clock = c
	return b
}

// WithTimestampKey overrides the timestamp field key (default "ts").
func (b *Builder) WithTimestampKey(k string) *Builder {
	if k != "" {
		b.tsKey = k
	}
	return b
}

// Build constructs the Bridge (Factory + Builder).
func (b *Builder) Build() (*Bridge, error) {
	if !b.hasSink {
		return nil, ErrNoSink
	}
	return &Bridge{
		sink:     b.sink,
		opaqueKV: b.opaqueKV,
		clock:    b.clock,
		tsKey:    b.tsKey,
	}, nil
}
