// Package ui provides the Bubble Tea terminal interface for liftoff.
//
// # Architecture
//
// Model owns no network code. It polls state.Store on a tick and renders the
// latest snapshot. The only outbound action is re-keying the comments binding
// when the selected launch changes; the binding itself decides whether that
// dispatches a request.
//
// # Files
//
//   - app.go: Model, Options, Update loop, key dispatch and Run
//   - timeline.go: mission filter, date-grouped rows and scrolling
//   - detail.go: launch detail pane with webcast link and comments
//   - diagnostics.go: tail of the JSON log file
//   - header.go: status line and command bar
//   - help.go, keys.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: lipgloss themes and background helpers
//
// # Views
//
//   - Timeline: launches grouped by UTC day, oldest first, with a detail pane
//     beside it on wide terminals (tab switches focus) or in place of it on
//     narrow ones
//   - Diagnostics: the structured log written by the query bindings
//
// # Key Bindings
//
//	j/k, g/G, ctrl+d/u   move selection or scroll
//	tab                  toggle timeline/detail focus
//	/ and c              filter missions, clear filter
//	d                    toggle mission details
//	t, l, esc            timeline, diagnostics, back
//	T                    cycle theme (saved to prefs)
//	h/?                  help
//	e, ctrl+c            quit
package ui
