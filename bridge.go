package slogbridge

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"
)

// Drain is the contract a source logger calls once per log record. The
// payload slice is borrowed for the duration of the call; implementations
// must not retain it or alias into it after Log returns.
type Drain interface {
	Log(r Record, kv []Field) error
}

// Bridge converts slog-style records into zerolog events with low
// overhead.
//
// Optimizations:
//   - Interns one pre-bound child zerolog.Logger per call site, so the
//     five static slog.* fields are encoded once, not per-log call.
//   - Fast pre-check against the sink's level to avoid allocating a
//     zerolog.Event when the call site is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
//
// A Bridge is safe for concurrent use. Within one goroutine emissions
// preserve call order; no ordering is promised across goroutines.
type Bridge struct {
	sink     zerolog.Logger
	sites    registry
	opaqueKV bool
	clock    xclock.Clock // nil means xclock.Default() semantics
	tsKey    string
}

// New creates a Bridge emitting into sink with default options:
// per-field payload mode, "ts" timestamp key, process clock.
func New(sink zerolog.Logger) *Bridge {
	return &Bridge{sink: sink, tsKey: defaultTimestampKey}
}

var _ Drain = (*Bridge)(nil)

// Log implements Drain. It emits exactly one event for the record and
// always reports success: translation problems degrade to textual
// fallbacks instead of surfacing, because a broken logging bridge must
// never break the instrumented application.
func (b *Bridge) Log(r Record, kv []Field) error {
	cs := b.sites.resolve(r.key(), &b.sink)

	// Fast path: drop early if below the sink's min level (no Event
	// allocation).
	if cs.level < cs.logger.GetLevel() {
		return nil
	}
	ev := cs.logger.WithLevel(cs.level)
	if ev == nil {
		return nil
	}

	// Single authoritative timestamp; RFC3339Nano precision regardless of
	// encoder defaults.
	ev.Str(b.tsKey, b.now().UTC().Format(time.RFC3339Nano))

	if b.opaqueKV {
		if s := renderKV(kv); s != "" {
			ev.Str(FieldKV, s)
		}
	} else {
		for i := range kv {
			appendField(ev, &kv[i])
		}
	}

	ev.Msg(r.Msg)
	return nil
}

// Enabled reports whether records at level would currently be emitted.
// Use to avoid building payloads in hot paths when disabled. The emission
// path gates on both the sink's level and zerolog's global level, so
// Enabled checks both.
func (b *Bridge) Enabled(level Level) bool {
	zlvl := toZerologLevel(level)
	return zlvl >= b.sink.GetLevel() && zlvl >= zerolog.GlobalLevel()
}

// Resolve returns the process-lifetime descriptor for the record's call
// site, interning it on first use. Repeated and concurrent calls for the
// same (module, file, line, column, level, target) tuple return the
// identical pointer.
func (b *Bridge) Resolve(r Record) *Callsite {
	return b.sites.resolve(r.key(), &b.sink)
}

func (b *Bridge) now() time.Time {
	if b.clock != nil {
		return b.clock.Now()
	}
	return xclock.Now()
}
