package slogadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/slogbridge"
)

func decodeLine(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, string(line))
	}
	return m
}

func TestHandler_EmitsThroughBridge(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf), &Options{Target: "api"})

	logger.Info("hello", "user_id", 42, "retry", true)

	m := decodeLine(t, buf.Bytes())
	if m["message"] != "hello" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["level"] != "info" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["slog.target"] != "api" {
		t.Fatalf("slog.target mismatch: %v", m["slog.target"])
	}
	if m["user_id"] != float64(42) || m["retry"] != true {
		t.Fatalf("payload mismatch: %v", m)
	}

	module, _ := m["slog.module_path"].(string)
	if !strings.HasSuffix(module, "adapter/slog") {
		t.Fatalf("slog.module_path mismatch: %q", module)
	}
	file, _ := m["slog.file"].(string)
	if !strings.HasSuffix(file, "adapter_test.go") {
		t.Fatalf("slog.file mismatch: %q", file)
	}
	if line, _ := m["slog.line"].(float64); line <= 0 {
		t.Fatalf("slog.line mismatch: %v", m["slog.line"])
	}
	// Go's runtime has no call-site columns.
	if m["slog.column"] != float64(0) {
		t.Fatalf("slog.column mismatch: %v", m["slog.column"])
	}
}

func TestHandler_TargetFallsBackToModule(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf), nil)

	logger.Info("hello")

	m := decodeLine(t, buf.Bytes())
	target, _ := m["slog.target"].(string)
	if target == "" || target != m["slog.module_path"] {
		t.Fatalf("target must fall back to module path: %v", m)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := New(slogbridge.New(zerolog.Nop()), nil)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug must be disabled by default")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info must be enabled by default")
	}

	h = New(slogbridge.New(zerolog.Nop()), &Options{Level: slog.LevelDebug})
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug must be enabled when configured")
	}
}

func TestHandler_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf), &Options{Target: "api"})

	logger.With("svc", "api").WithGroup("req").With("region", "eu").Info("ok", "id", 7)

	m := decodeLine(t, buf.Bytes())
	if m["svc"] != "api" {
		t.Fatalf("pre-bound attr missing: %v", m)
	}
	if m["req.region"] != "eu" {
		t.Fatalf("attr bound after group must be qualified: %v", m)
	}
	if m["req.id"] != float64(7) {
		t.Fatalf("record attr must be group-qualified: %v", m)
	}
}

func TestHandler_NestedGroupsAndInlineGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf), nil)

	logger.WithGroup("a").WithGroup("b").Info("ok",
		"id", 7,
		slog.Group("g", slog.Int("n", 1)),
		slog.Group("", slog.String("inline", "x")),
	)

	m := decodeLine(t, buf.Bytes())
	if m["a.b.id"] != float64(7) {
		t.Fatalf("nested groups: %v", m)
	}
	if m["a.b.g.n"] != float64(1) {
		t.Fatalf("explicit group: %v", m)
	}
	if m["a.b.inline"] != "x" {
		t.Fatalf("inline group members must lift to the enclosing prefix: %v", m)
	}
}

func TestHandler_FallbackKinds(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf), nil)

	logger.Info("ok", "d", time.Second, "f", 1.5, "u", uint64(9))

	m := decodeLine(t, buf.Bytes())
	if m["d"] != "1s" {
		t.Fatalf("duration must degrade to text: %v", m["d"])
	}
	if m["f"] != float64(1.5) {
		t.Fatalf("float must stay native: %v", m["f"])
	}
	if m["u"] != float64(9) {
		t.Fatalf("uint must stay native: %v", m["u"])
	}
}

func TestHandler_LevelsMapped(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf), &Options{Level: slog.Level(-8)})

	cases := []struct {
		level slog.Level
		want  string
	}{
		{slog.Level(-8), "trace"},
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
		{slog.Level(12), "error"}, // critical collapses onto error
	}
	for _, c := range cases {
		buf.Reset()
		logger.Log(context.Background(), c.level, "x")
		m := decodeLine(t, buf.Bytes())
		if m["level"] != c.want {
			t.Fatalf("slog level %v: got %v want %v", c.level, m["level"], c.want)
		}
	}
}

func TestHandler_SameStatementSharesCallsite(t *testing.T) {
	var buf bytes.Buffer
	bridge := slogbridge.New(zerolog.New(&buf))
	logger := slog.New(New(bridge, nil))

	var first, second *slogbridge.Callsite
	for i := 0; i < 2; i++ {
		logger.Info("probe") // one source statement, one call site
		cs := resolveLast(t, bridge, &buf)
		if i == 0 {
			first = cs
		} else {
			second = cs
		}
		buf.Reset()
	}
	if first != second {
		t.Fatal("repeated logging from one statement must reuse the descriptor")
	}
}

// resolveLast rebuilds the record identity from the last emitted line and
// resolves it, returning the interned descriptor.
func resolveLast(t *testing.T, b *slogbridge.Bridge, buf *bytes.Buffer) *slogbridge.Callsite {
	t.Helper()
	m := decodeLine(t, buf.Bytes())
	return b.Resolve(slogbridge.Record{
		Level:  slogbridge.LevelInfo,
		Target: m["slog.target"].(string),
		Module: m["slog.module_path"].(string),
		File:   m["slog.file"].(string),
		Line:   int(m["slog.line"].(float64)),
	})
}
