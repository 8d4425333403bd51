// Package app provides the orchestration layer for liftoff.
//
// # Overview
//
// This package wires configuration, logging, the GraphQL clients, the query
// bindings, the snapshot store and the UI together. It is the composition
// root: every dependency is built here and injected downward, and nothing
// below it reaches for globals.
//
// # Entry Points
//
//   - Run: the interactive TUI. Logs go to a JSON file under log_dir.
//   - PrintTimeline: one-shot launch listing grouped by UTC day.
//   - PrintComments: one-shot comment listing for a flight.
//
// The one-shot commands log text to stderr and share the same bindings as the
// TUI, blocking on Binding.Wait instead of polling a store.
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()            read config.toml
//	 ├─> logging.NewFile()        JSON log for the diagnostics view
//	 ├─> newFeed()                one graphql client and binding per endpoint
//	 │    └─> OnChange ──> state.Store.Update{Launches,Comments}
//	 ├─> launches.Use()           dispatch the launch list once
//	 └─> ui.Run()                 blocks; re-keys comments on selection
//
// # Failure Handling
//
// Config, logging and client construction errors are fatal and returned to
// the CLI. Query failures are not: the bindings log them and surface them in
// their state, and the UI renders that state.
package app
