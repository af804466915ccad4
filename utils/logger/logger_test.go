package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitLogger_TextFormatAndLevel(t *testing.T) {
	prev := Logger
	defer func() {
		Logger = prev
		slog.SetDefault(prev)
	}()

	var buf bytes.Buffer
	l := InitLogger(Options{Level: "warn", Format: "text", Output: &buf})

	l.Info("hidden")
	l.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, "msg=visible") {
		t.Errorf("expected text formatted warn line, got: %s", out)
	}
}

func TestContextLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	cl := NewContextLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := context.WithValue(context.Background(), ViewerIDKey, "viewer-1")
	ctx = WithOperation(ctx, "FetchFeed")

	cl.LogDuration(ctx, "FetchFeed", 15*time.Millisecond)
	out := buf.String()
	for _, want := range []string{`"viewer_id":"viewer-1"`, `"operation":"FetchFeed"`, `"duration_ms":15`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}

	buf.Reset()
	cl.LogError(ctx, "FetchFeed", errors.New("boom"))
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("missing error field: %s", buf.String())
	}
}
