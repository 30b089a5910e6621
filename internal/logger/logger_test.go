package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")

	l.log(InfoLevel, "hidden %d", 1)
	l.log(WarnLevel, "shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Errorf("expected warn message, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")

	l.log(DebugLevel, "table %s loaded", "beam")

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if e.Level != "debug" || e.Message != "table beam loaded" {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warn":    WarnLevel,
		"error":   ErrorLevel,
		"verbose": InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
