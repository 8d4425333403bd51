// Package state provides the thread-safe feed snapshot shared by the query
// bindings and the UI.
//
// # Overview
//
// The launches and comments bindings settle on their own goroutines. Their
// OnChange callbacks write into a Store; the UI reads a Snapshot on every
// tick. The Store is the only place those two sides meet.
//
//	Producers (bindings):            Consumer (UI):
//	┌──────────────────────┐        ┌──────────────────┐
//	│ launches.OnChange    │──┐     │                  │
//	│  → UpdateLaunches()  │  ├────→│ store.Snapshot() │
//	│ comments.OnChange    │  │     │      ↓           │
//	│  → UpdateComments()  │──┘     │  render view     │
//	└──────────────────────┘ (mutex)└──────────────────┘
//
// # Update Semantics
//
// UpdateLaunches regroups the timeline with spacex.GroupByDate whenever the
// launches binding settles with data. A failed settle keeps the previous
// timeline and records the error, so a refresh failure never blanks a view
// that already had data.
//
// Every settled transition stamps LastUpdated. Failures increment
// ConsecutiveFailures; a success resets it. IsOffline reports two or more
// failures in a row.
//
// The comments slot always holds the most recent comments binding state.
// Because the binding is re-keyed as the selection moves, readers use
// Snapshot.CommentsFor with the key of the flight they are rendering; a
// mismatched key reads as loading.
//
// # Copy Semantics
//
// Snapshot returns copies of every slice (launches, comments, timeline
// buckets) and wraps LastError, so the UI can never mutate stored data.
package state
