// Package query provides Binding, an asynchronous query-state container.
//
// # Overview
//
// A Binding pairs one graphql.QueryFunc with a decoder and tracks the
// lifecycle of the query currently observed through it:
//
//	Pending ──success──> Settled{Data}
//	   │
//	   └──failure──────> Settled{Err}   (or stays Pending with KeepLoadingOnError)
//
// The only way back to Pending is observing a different request.
//
// # Dispatch rules
//
//   - Use with a request key seen for the first time dispatches exactly one
//     call to the QueryFunc on its own goroutine.
//   - Use with the current key never dispatches again, whether the request
//     is still in flight or already settled.
//   - Use with a new key cancels the superseded request's context and bumps
//     a generation counter. A result from an older generation is discarded
//     when it arrives, so the latest query always wins.
//
// # Failures
//
// Every failure is logged at error level with the binding name. By default
// the failure is also surfaced as State.Err so views can render an error
// instead of spinning forever. Options.KeepLoadingOnError restores the
// log-only behaviour.
//
// # Ownership
//
// Bindings share nothing: each one owns its key, generation and state, and
// two bindings never de-duplicate each other's requests. Construct one per
// endpoint/query slot and pass it to whoever needs it.
package query
