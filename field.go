package slogbridge

// Kind identifies the concrete type stored in a Field.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindUnit
	KindAny
)

// Field is a compact, reflection-free union for one payload key/value
// pair. Payload slices are borrowed for the duration of a single
// Drain.Log call; the bridge never retains them.
type Field struct {
	K       string
	Kind    Kind
	Str     string
	Int64   int64
	Uint64  uint64
	Float64 float64
	Bool    bool
	Any     any
}

// Helpers for ergonomics.

func Str(k, v string) Field             { return Field{K: k, Kind: KindString, Str: v} }
func Int(k string, v int) Field         { return Int64(k, int64(v)) }
func Int64(k string, v int64) Field     { return Field{K: k, Kind: KindInt64, Int64: v} }
func Uint64(k string, v uint64) Field   { return Field{K: k, Kind: KindUint64, Uint64: v} }
func Float64(k string, v float64) Field { return Field{K: k, Kind: KindFloat64, Float64: v} }
func Bool(k string, v bool) Field       { return Field{K: k, Kind: KindBool, Bool: v} }

// Unit is the payload value carrying no data; it encodes as JSON null.
func Unit(k string) Field { return Field{K: k, Kind: KindUnit} }

// Any carries a value outside the native capability set. It is emitted
// as its textual rendering, never natively.
func Any(k string, v any) Field { return Field{K: k, Kind: KindAny, Any: v} }
