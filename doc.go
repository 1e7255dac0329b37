// Package slogbridge forwards structured records from a slog-style logger
// into zerolog.
//
// The two models disagree about call sites: the source logger describes its
// origin (module path, file, line, column, target) with runtime values on
// every call, while zerolog is cheapest when static fields are bound onto a
// logger once and reused. slogbridge reconciles them by treating each
// observed (location, level, target) tuple as a lazily discovered call site:
// the first record from a tuple interns an immutable Callsite descriptor
// with the static slog.* fields pre-bound, and every later record from the
// same tuple reuses the identical instance.
//
// Usage:
//
//	zl := zerolog.New(os.Stdout)
//	bridge := slogbridge.New(zl)
//
//	bridge.Log(slogbridge.Record{
//	    Level:  slogbridge.LevelInfo,
//	    Msg:    "listening",
//	    Module: "acme/payments",
//	    File:   "server.go",
//	    Line:   42,
//	}, []slogbridge.Field{slogbridge.Int("port", 8080)})
//
// Go applications on log/slog can drive the bridge through the handler in
// adapter/slog instead of calling Log directly.
//
// A Bridge never reports failure to its caller: values without a native
// zerolog encoding degrade to their textual rendering, and Log returns nil
// unconditionally. A broken logging bridge must never break the
// instrumented application.
package slogbridge
