package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// DelimiterRune returns the vocabulary field delimiter as a rune. The value must
// be exactly one character; "\t" and "tab" are accepted for tab-separated files.
func (c VocabConfig) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "\\t", "tab":
		return '\t', nil
	}
	runes := []rune(c.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid vocab delimiter %q: want a single character", c.Delimiter)
	}
	switch runes[0] {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("invalid vocab delimiter %q", c.Delimiter)
	}
	return runes[0], nil
}
