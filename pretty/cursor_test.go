package pretty

import (
	"testing"
)

func TestCursorSequences(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"up two", CursorUp(2), "\x1b[2A"},
		{"up zero", CursorUp(0), ""},
		{"erase line", EraseLine(), "\r\x1b[2K"},
		{"clear screen", ClearScreen(), "\x1b[1;1H\x1b[0J"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}

func TestRule(t *testing.T) {
	if got := Rule(5, 0); got != "-----" {
		t.Errorf("expected five dashes, got %q", got)
	}
	if got := Rule(120, 80); len(got) != 80 {
		t.Errorf("expected rule capped to 80, got %d", len(got))
	}
	if got := Rule(0, 80); got != "" {
		t.Errorf("expected empty rule, got %q", got)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	// Test binaries do not run with a terminal attached to stdout.
	if width := TerminalWidth(); width <= 0 {
		t.Errorf("expected positive width, got %d", width)
	}
}
