package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Endpoint describes one GraphQL service.
type Endpoint struct {
	URL     string
	Headers map[string]string
}

// Enabled reports whether the endpoint has a URL.
func (e Endpoint) Enabled() bool {
	return strings.TrimSpace(e.URL) != ""
}

// Config captures everything liftoff needs at startup.
type Config struct {
	Launches Endpoint
	Comments Endpoint
	LogDir   string
	LogLevel string
	Timeout  time.Duration
	RetryMax int
}

const (
	defaultConfigPath     = "~/.config/liftoff/config.toml"
	defaultLogDir         = "~/.local/share/liftoff/logs"
	defaultLogLevel       = "info"
	defaultLaunchesURL    = "https://api.spacex.land/graphql/"
	defaultAPIKeyHeader   = "x-api-key"
	defaultTimeoutSeconds = 10
	defaultRetryMax       = 2

	commentsAPIKeyEnv = "LIFTOFF_COMMENTS_API_KEY"
)

type rawConfig struct {
	LogDir         string `toml:"log_dir"`
	LogLevel       string `toml:"log_level"`
	TimeoutSeconds *int   `toml:"request_timeout_seconds"`
	RetryMax       *int   `toml:"retry_max"`
	Launches       struct {
		Endpoint string `toml:"endpoint"`
	} `toml:"launches"`
	Comments struct {
		Endpoint     string `toml:"endpoint"`
		APIKey       string `toml:"api_key"`
		APIKeyHeader string `toml:"api_key_header"`
	} `toml:"comments"`
}

// Load locates and parses the liftoff config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw rawConfig
	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return build(raw)
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return build(raw)
}

func build(raw rawConfig) (Config, error) {
	cfg := Config{
		LogLevel: strings.ToLower(strings.TrimSpace(raw.LogLevel)),
		Timeout:  defaultTimeoutSeconds * time.Second,
		RetryMax: defaultRetryMax,
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	logDir := strings.TrimSpace(raw.LogDir)
	if logDir == "" {
		logDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(logDir)

	if raw.TimeoutSeconds != nil {
		if *raw.TimeoutSeconds <= 0 {
			return Config{}, fmt.Errorf("request_timeout_seconds must be positive, got %d", *raw.TimeoutSeconds)
		}
		cfg.Timeout = time.Duration(*raw.TimeoutSeconds) * time.Second
	}
	if raw.RetryMax != nil {
		if *raw.RetryMax < 0 {
			return Config{}, fmt.Errorf("retry_max must not be negative, got %d", *raw.RetryMax)
		}
		cfg.RetryMax = *raw.RetryMax
	}

	cfg.Launches.URL = strings.TrimSpace(raw.Launches.Endpoint)
	if cfg.Launches.URL == "" {
		cfg.Launches.URL = defaultLaunchesURL
	}

	cfg.Comments.URL = strings.TrimSpace(raw.Comments.Endpoint)
	apiKey := strings.TrimSpace(raw.Comments.APIKey)
	if env := strings.TrimSpace(os.Getenv(commentsAPIKeyEnv)); env != "" {
		apiKey = env
	}
	if apiKey != "" {
		header := strings.TrimSpace(raw.Comments.APIKeyHeader)
		if header == "" {
			header = defaultAPIKeyHeader
		}
		cfg.Comments.Headers = map[string]string{header: apiKey}
	}

	return cfg, nil
}

// LogPath returns the path to the liftoff log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/liftoff.log")
	}
	return filepath.Join(c.LogDir, "liftoff.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
