package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"trace", "DEBUG", "Info", "warn", "error", "crit"} {
		if _, err := ParseLevel(name); err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", name, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("unknown level must fail")
	}
}

func TestModuleGating(t *testing.T) {
	var buf bytes.Buffer
	old := Root()
	SetDefault(NewLogger(NewTerminalHandlerWithLevel(&buf, LevelTrace, false)))
	defer SetDefault(old)
	defer DisableModule(TrieMonitoring)

	Trace(TrieMonitoring, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("disabled module must not log, got %q", buf.String())
	}

	EnableModule(TrieMonitoring)
	Trace(TrieMonitoring, "visible", "bits", 3)
	out := buf.String()
	if !strings.Contains(out, "visible") || !strings.Contains(out, "bits=3") {
		t.Fatalf("unexpected log output %q", out)
	}
}
