package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(commentsAPIKeyEnv, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Launches.URL != defaultLaunchesURL {
		t.Fatalf("Launches.URL = %q, want %q", cfg.Launches.URL, defaultLaunchesURL)
	}
	if cfg.Comments.Enabled() {
		t.Fatalf("Comments should be disabled without an endpoint, got %q", cfg.Comments.URL)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.Timeout != defaultTimeoutSeconds*time.Second || cfg.RetryMax != defaultRetryMax {
		t.Fatalf("Timeout/RetryMax = %v/%d, want defaults", cfg.Timeout, cfg.RetryMax)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(commentsAPIKeyEnv, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_dir = "  ~/.liftoff/logs  "
log_level = " DEBUG "
request_timeout_seconds = 3
retry_max = 0

[launches]
endpoint = "  https://launches.example/graphql  "

[comments]
endpoint = "https://comments.example/graphql"
api_key = " s3cret "
api_key_header = "x-hasura-admin-secret"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Launches.URL != "https://launches.example/graphql" {
		t.Fatalf("Launches.URL = %q", cfg.Launches.URL)
	}
	if !cfg.Comments.Enabled() || cfg.Comments.Headers["x-hasura-admin-secret"] != "s3cret" {
		t.Fatalf("Comments = %#v, want endpoint with api key header", cfg.Comments)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Timeout != 3*time.Second || cfg.RetryMax != 0 {
		t.Fatalf("Timeout/RetryMax = %v/%d, want 3s/0", cfg.Timeout, cfg.RetryMax)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.LogPath() != filepath.Join(cfg.LogDir, "liftoff.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(commentsAPIKeyEnv, "from-env")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[comments]
endpoint = "https://comments.example/graphql"
api_key = "from-file"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.Comments.Headers[defaultAPIKeyHeader]; got != "from-env" {
		t.Fatalf("api key = %q, want from-env", got)
	}
}

func TestLoad_RejectsBadNumbers(t *testing.T) {
	for _, body := range []string{"request_timeout_seconds = 0", "retry_max = -1"} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("Load(%q) returned nil error", body)
		}
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_dir = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/liftoff.log")) {
		t.Fatalf("LogPath = %q, want it to end with /liftoff.log", got)
	}
}
