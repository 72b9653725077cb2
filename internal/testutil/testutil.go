// Package testutil provides shared fixtures for package tests.
//
// Typical usage:
//
//	func TestMyTransform(t *testing.T) {
//	    in := testutil.WriteFile(t, t.TempDir(), "words.csv", "Mandarin,Pinyin,German\n")
//	    logs := &testutil.LogRecorder{}
//	    ...
//	    testutil.AssertFileContent(t, out, "...")
//	}
package testutil

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(tb testing.TB, dir, name, content string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write fixture %q: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(tb testing.TB, path string) string {
	tb.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read %q: %v", path, err)
	}
	return string(b)
}

// AssertFileContent fails the test unless path holds exactly want.
func AssertFileContent(tb testing.TB, path, want string) {
	tb.Helper()

	if got := ReadFile(tb, path); got != want {
		tb.Errorf("content of %q = %q; want %q", filepath.Base(path), got, want)
	}
}

// LogRecorder is a slog.Handler that keeps every record it receives.
type LogRecorder struct {
	mu      sync.Mutex
	records []slog.Record
}

// Logger returns a logger writing into r.
func (r *LogRecorder) Logger() *slog.Logger { return slog.New(r) }

func (r *LogRecorder) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *LogRecorder) WithAttrs(_ []slog.Attr) slog.Handler { return r }
func (r *LogRecorder) WithGroup(_ string) slog.Handler      { return r }

// Records returns the records logged at level or above whose message is msg.
// An empty msg matches every message.
func (r *LogRecorder) Records(level slog.Level, msg string) []slog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []slog.Record
	for _, rec := range r.records {
		if rec.Level < level {
			continue
		}
		if msg != "" && rec.Message != msg {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Attrs flattens the attributes of rec into a map.
func Attrs(rec slog.Record) map[string]any {
	m := make(map[string]any)
	rec.Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value.Any()
		return true
	})
	return m
}
