// Package spacex holds the launch feed domain: record types, GraphQL
// documents and decoders, date grouping, and webcast ID extraction.
//
// GroupByDate and ExtractVideoID are pure and safe for concurrent use.
// ExtractVideoID never fails; unrecognized input yields the "error" sentinel,
// which produces a visibly broken embed URL instead of a crash.
package spacex
