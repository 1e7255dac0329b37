package slogbridge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// appendField writes one payload field to an event using the native
// zerolog encoder for its kind. Serialization never fails: values outside
// the native capability set degrade to their textual rendering.
func appendField(e *zerolog.Event, f *Field) {
	switch f.Kind {
	case KindString:
		e.Str(f.K, f.Str)
	case KindInt64:
		e.Int64(f.K, f.Int64)
	case KindUint64:
		e.Uint64(f.K, f.Uint64)
	case KindFloat64:
		e.Float64(f.K, f.Float64)
	case KindBool:
		e.Bool(f.K, f.Bool)
	case KindUnit:
		e.Interface(f.K, nil)
	case KindAny:
		e.Str(f.K, renderAny(f.Any))
	default:
		e.Interface(f.K, nil)
	}
}

// renderAny is the textual fallback. fmt recovers panics raised inside
// Stringer and error implementations, so rendering cannot take down the
// caller.
func renderAny(v any) string {
	return fmt.Sprint(v)
}

// renderKV flattens the ordered payload into the opaque-mode
// representation: "k=v,k=v", order-preserving. An empty payload renders
// as "" and the slog.kv field is omitted by the caller.
func renderKV(kv []Field) string {
	if len(kv) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range kv {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(kv[i].K)
		b.WriteByte('=')
		appendText(&b, &kv[i])
	}
	return b.String()
}

func appendText(b *strings.Builder, f *Field) {
	switch f.Kind {
	case KindString:
		b.WriteString(f.Str)
	case KindInt64:
		b.WriteString(strconv.FormatInt(f.Int64, 10))
	case KindUint64:
		b.WriteString(strconv.FormatUint(f.Uint64, 10))
	case KindFloat64:
		b.WriteString(strconv.FormatFloat(f.Float64, 'g', -1, 64))
	case KindBool:
		b.WriteString(strconv.FormatBool(f.Bool))
	case KindUnit:
		b.WriteString("null")
	case KindAny:
		b.WriteString(renderAny(f.Any))
	}
}
