package slogbridge

import (
	"sync"

	"github.com/rs/zerolog"
)

// Names of the structured fields every emission carries. Payload keys are
// not checked against them; a colliding key is forwarded untouched and
// the duplicate resolves last-write-wins at decode time.
const (
	FieldTarget     = "slog.target"
	FieldModulePath = "slog.module_path"
	FieldFile       = "slog.file"
	FieldLine       = "slog.line"
	FieldColumn     = "slog.column"
	FieldKV         = "slog.kv"
)

// callsiteName is the fixed descriptor name. zerolog's own caller and
// timestamp hooks stay disabled; per-record source info travels only in
// the explicit slog.* fields.
const callsiteName = "slog event"

// Callsite is the immutable descriptor for one logging call site. The
// five static slog.* fields are bound onto a child logger once, so the
// per-call cost after warm-up is a map hit plus the event itself.
// Descriptors are never mutated or evicted; pointers stay valid for the
// process lifetime.
type Callsite struct {
	name   string
	level  zerolog.Level
	logger zerolog.Logger
}

// Name returns the fixed descriptor name.
func (c *Callsite) Name() string { return c.name }

// Level returns the sink level the call site emits at.
func (c *Callsite) Level() zerolog.Level { return c.level }

// registry interns Callsites by callsiteKey. Entries accumulate for the
// process lifetime: distinct call sites are bounded by the program's own
// source, not by traffic, so growth is bounded too. Steady-state lookups
// take sync.Map's read-only fast path.
type registry struct {
	sites sync.Map // callsiteKey -> *Callsite
}

// resolve returns the descriptor for key, constructing it on first use.
// Concurrent first-use races converge on one winner; losers discard their
// candidate and adopt the stored descriptor. resolve never fails: there
// is no fallible step, and unknown locations simply render as empty
// strings and zero line/column.
func (g *registry) resolve(key callsiteKey, sink *zerolog.Logger) *Callsite {
	if v, ok := g.sites.Load(key); ok {
		return v.(*Callsite)
	}
	v, _ := g.sites.LoadOrStore(key, newCallsite(key, sink))
	return v.(*Callsite)
}

func (g *registry) size() int {
	n := 0
	g.sites.Range(func(_, _ any) bool { n++; return true })
	return n
}

func newCallsite(key callsiteKey, sink *zerolog.Logger) *Callsite {
	ctx := sink.With().
		Str(FieldTarget, key.target).
		Str(FieldModulePath, key.module).
		Str(FieldFile, key.file).
		Int(FieldLine, key.line).
		Int(FieldColumn, key.column)
	return &Callsite{
		name:   callsiteName,
		level:  toZerologLevel(key.level),
		logger: ctx.Logger(),
	}
}
