package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutSplitWidth is the minimum width to show timeline and detail side by side.
	LayoutSplitWidth = 100

	// TimelinePaneRatio is the share of the width given to the timeline in split mode.
	TimelinePaneRatio = 0.45
)

// Diagnostics limits.
const (
	// LogTailLimit is the maximum number of log entries shown in diagnostics.
	LogTailLimit = 500
)

// DefaultPollTick is how often the UI copies the store snapshot.
const DefaultPollTick = 500 * time.Millisecond
