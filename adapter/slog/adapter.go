package slogadapter

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/trickstertwo/slogbridge"
)

// Options configures the handler. Explicit and code-first.
type Options struct {
	// Target identifies the logger in the slog.target field; empty falls
	// back to the resolved module path.
	Target string
	// Level is the minimum level Enabled reports true for; nil means
	// slog.LevelInfo. Note the sink applies its own gate on top.
	Level slog.Leveler
}

// Handler adapts the Go log/slog API onto a slogbridge.Drain.
//
// Handle resolves the record's PC into module path, file, and line; Go's
// runtime does not expose call-site columns, so Column is always 0. The
// record's own timestamp is ignored: the bridge stamps the single
// authoritative timestamp at emission.
type Handler struct {
	drain  slogbridge.Drain
	opts   Options
	attrs  []slogbridge.Field // pre-bound, group prefixes already applied
	groups []string
}

// New creates a handler draining into d. A nil opts selects defaults.
func New(d slogbridge.Drain, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	return &Handler{drain: d, opts: *opts}
}

var _ slog.Handler = (*Handler)(nil)

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return l >= min
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	module, file, line := sourceOf(r.PC)

	rec := slogbridge.Record{
		Level:  slogbridge.Level(r.Level), // same numeric grid
		Msg:    r.Message,
		Target: h.opts.Target,
		Module: module,
		File:   file,
		Line:   line,
	}

	fields := make([]slogbridge.Field, 0, len(h.attrs)+r.NumAttrs())
	fields = append(fields, h.attrs...)
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, prefix, a)
		return true
	})

	return h.drain.Log(rec, fields)
}

// WithAttrs qualifies the attrs with the handler's open groups and binds
// them ahead of per-record attrs (slog contract).
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	prefix := strings.Join(h.groups, ".")
	bound := make([]slogbridge.Field, 0, len(h.attrs)+len(attrs))
	bound = append(bound, h.attrs...)
	for _, a := range attrs {
		bound = appendAttr(bound, prefix, a)
	}
	h2.attrs = bound
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string(nil), h.groups...), name)
	return &h2
}

// appendAttr converts one attr, flattening groups into dot-qualified
// keys. Kinds with a native bridge encoding convert directly; everything
// else (durations, times, arbitrary values) takes the textual fallback
// kind.
func appendAttr(dst []slogbridge.Field, prefix string, a slog.Attr) []slogbridge.Field {
	if a.Equal(slog.Attr{}) {
		return dst
	}
	v := a.Value.Resolve()
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}
	switch v.Kind() {
	case slog.KindString:
		return append(dst, slogbridge.Str(key, v.String()))
	case slog.KindInt64:
		return append(dst, slogbridge.Int64(key, v.Int64()))
	case slog.KindUint64:
		return append(dst, slogbridge.Uint64(key, v.Uint64()))
	case slog.KindFloat64:
		return append(dst, slogbridge.Float64(key, v.Float64()))
	case slog.KindBool:
		return append(dst, slogbridge.Bool(key, v.Bool()))
	case slog.KindGroup:
		// An inline group (empty key) lifts its members to the enclosing
		// prefix.
		for _, ga := range v.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	default:
		return append(dst, slogbridge.Any(key, v.Any()))
	}
}

func sourceOf(pc uintptr) (module, file string, line int) {
	if pc == 0 {
		return "", "", 0
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return moduleOf(frame.Function), frame.File, frame.Line
}

// moduleOf trims a runtime function name down to its package path, e.g.
// "github.com/acme/auth.(*Service).Login" -> "github.com/acme/auth".
func moduleOf(fn string) string {
	if fn == "" {
		return ""
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}
