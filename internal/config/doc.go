// Package config loads liftoff's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/liftoff/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Launches endpoint: https://api.spacex.land/graphql/
//   - Comments endpoint: none (comments are disabled)
//   - Log directory: ~/.local/share/liftoff/logs
//   - Log file: <log_dir>/liftoff.log
//   - Log level: info
//   - Request timeout: 10 seconds
//   - Retries: 2
//
// # TOML Format
//
//	log_dir = "~/.local/share/liftoff/logs"
//	log_level = "info"
//	request_timeout_seconds = 10
//	retry_max = 2
//
//	[launches]
//	endpoint = "https://api.spacex.land/graphql/"
//
//	[comments]
//	endpoint = "https://comments.example/graphql"
//	api_key = "..."
//	api_key_header = "x-api-key"
//
// The comments service authenticates with a static API key sent as a request
// header. LIFTOFF_COMMENTS_API_KEY overrides api_key so the key can stay out
// of the file. The launches service needs no credentials.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A non-positive timeout or a negative retry count
//
// Missing config files are NOT an error; liftoff works out of the box
// against the public launches endpoint.
package config
