package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		" warn ":  WARN,
		"warning": WARN,
		"error":   ERROR,
		"none":    NONE,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, WARN)
	defer SetOutput(&bytes.Buffer{}, INFO)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("unexpected low-level output: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("missing expected output: %q", out)
	}
}

func TestWarnOnce(t *testing.T) {
	once = sync.Once{}
	defer func() { once = sync.Once{} }()

	var buf bytes.Buffer
	WarnOnce(&buf, errors.New("dial tcp: refused"), false)
	WarnOnce(&buf, errors.New("dial tcp: refused"), true)

	out := buf.String()
	if strings.Count(out, "Unable to reach PhraseFinder") != 1 {
		t.Errorf("expected a single warning, got %q", out)
	}
	if strings.Contains(out, "Falling back") {
		t.Errorf("warning without fallback must not claim one: %q", out)
	}
	if !strings.Contains(out, "--source file") {
		t.Errorf("expected offline hint, got %q", out)
	}
}
