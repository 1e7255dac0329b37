package slogbridge

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Facade: global access (Singleton + Facade). Logging infrastructure
// lives for the whole process, so there is no teardown beyond exit.

var global atomic.Pointer[Bridge]

// SetGlobal sets the global Bridge (Singleton setter).
func SetGlobal(b *Bridge) { global.Store(b) }

// L returns the global Bridge; panics if unset to surface misconfig early.
func L() *Bridge {
	b := global.Load()
	if b == nil {
		panic("slogbridge: global bridge not set. Build one and call slogbridge.SetGlobal(...)")
	}
	return b
}

// Use builds a Bridge over sink with default options, wires it as the
// global bridge, and returns it. Single line, explicit, no envs.
func Use(sink zerolog.Logger) *Bridge {
	b := New(sink)
	SetGlobal(b)
	return b
}
