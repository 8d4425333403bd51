package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRead_ReturnsLastEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "liftoff.log")

	var content strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&content, `{"level":"info","msg":"line %d","time":"2025-01-02T03:04:05Z"}`+"\n", i)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		first    string
		count    int
	}{
		{"zero", 0, "", 0},
		{"negative", -1, "", 0},
		{"partial", 5, "line 6", 5},
		{"exact", 10, "line 1", 10},
		{"more than exists", 20, "line 1", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("Read() returned %d entries, want %d", len(got), tt.count)
			}
			if tt.count > 0 && got[0].Message != tt.first {
				t.Fatalf("first entry = %q, want %q", got[0].Message, tt.first)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse_LogrusJSON(t *testing.T) {
	e := Parse(`{"binding":"launches","error":"graphql https://x: transport: refused","level":"error","msg":"query failed","operation":"Launches","time":"2025-01-02T03:04:05.5Z"}`)

	if e.Level != "error" || e.Message != "query failed" {
		t.Fatalf("entry = %#v", e)
	}
	if !strings.Contains(e.Error, "refused") {
		t.Fatalf("Error = %q", e.Error)
	}
	want := time.Date(2025, 1, 2, 3, 4, 5, 500_000_000, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if got := e.FieldString(); got != "binding=launches operation=Launches" {
		t.Fatalf("FieldString = %q", got)
	}
}

func TestParse_PlainLine(t *testing.T) {
	for _, line := range []string{"plain text", `["array"]`, `{"broken"`} {
		e := Parse(line)
		if e.Message != line || e.Level != "" {
			t.Fatalf("Parse(%q) = %#v, want verbatim message", line, e)
		}
	}
}
