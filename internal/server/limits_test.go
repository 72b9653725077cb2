package server_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/go-pinyin-tones/internal/server"
)

func TestConvert_OversizedTextRejectedAs413(t *testing.T) {
	h := newTestHandler(server.WithMaxTextBytes(10))

	bigText := strings.Repeat("x", 11)
	body := bytes.NewBufferString(`{"text":"` + bigText + `"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("want 413, got %d", rec.Code)
	}

	if decodeBody(t, rec)["error"] == "" {
		t.Error("want non-empty error field")
	}
}

func TestConvert_TextAtExactLimitIsAccepted(t *testing.T) {
	h := newTestHandler(server.WithMaxTextBytes(4))

	body := bytes.NewBufferString(`{"text":"hao3"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200 for exactly-limit text, got %d", rec.Code)
	}

	if got := decodeBody(t, rec)["text"]; got != "hǎo" {
		t.Errorf("text = %q; want %q", got, "hǎo")
	}
}
