package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommentsCmd_RejectsNonNumericFlight(t *testing.T) {
	_, err := execute(t, "comments", "falcon")
	if err == nil || !strings.Contains(err.Error(), "invalid flight number") {
		t.Fatalf("err = %v, want invalid flight number", err)
	}
}

func TestCommentsCmd_RequiresOneArg(t *testing.T) {
	if _, err := execute(t, "comments"); err == nil {
		t.Fatalf("expected error without a flight argument")
	}
}

func TestLaunchesCmd_PrintsTimeline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"launches":[{"id":"1","mission_name":"FalconSat","launch_date_utc":"2006-03-24T22:30:00.000Z"}]}}`)
	}))
	defer srv.Close()

	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("[launches]\nendpoint = \""+srv.URL+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "--config", cfg, "launches")
	if err != nil {
		t.Fatalf("launches: %v", err)
	}
	if !strings.HasPrefix(out, "2006-03-24\n") || !strings.Contains(out, "FalconSat") {
		t.Fatalf("output = %q", out)
	}
}
