package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status line: logo, launch counts and feed health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("LIFTOFF", styles.Logo)}

	grouped := m.visibleTimeline()
	counts := fmt.Sprintf("%d launches on %d days", grouped.Len(), len(grouped))
	parts = append(parts, bg.Render(counts, styles.Text))

	parts = append(parts, bg.Render(m.feedStatus(), m.feedStatusStyle(styles)))

	if !m.lastUpdated.IsZero() && !m.snapshot.LastUpdated.IsZero() {
		ago := time.Since(m.snapshot.LastUpdated).Truncate(time.Second)
		parts = append(parts, bg.Render("updated "+ago.String()+" ago", styles.FaintText))
	}

	line := bg.Join(parts, "  ")
	return bg.FillLine(line, m.width)
}

// feedStatus summarizes the launches binding and recent failures.
func (m Model) feedStatus() string {
	snap := m.snapshot
	switch {
	case snap.IsOffline() && snap.LastError != nil:
		return "offline: " + truncate(snap.LastError.Error(), 60)
	case snap.Launches.Err != nil:
		return "error: " + truncate(snap.Launches.Err.Error(), 60)
	case snap.Launches.Loading:
		return "loading"
	default:
		return "ready"
	}
}

func (m Model) feedStatusStyle(styles Styles) lipgloss.Style {
	snap := m.snapshot
	switch {
	case snap.IsOffline(), snap.Launches.Err != nil:
		return styles.DangerText
	case snap.Launches.Loading:
		return styles.WarningText
	default:
		return styles.SuccessText
	}
}

// renderCommandBar renders the filter prompt or the key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	if m.filtering {
		hint := styles.FaintText.Render("  enter apply  esc cancel")
		return m.filterInput.View() + hint
	}

	var hints []string
	if m.currentView == ViewDiagnostics {
		hints = []string{"t timeline", "j/k scroll", "g/G top/bottom"}
	} else {
		hints = []string{"j/k move", "tab focus", "/ filter", "d details", "l log"}
	}
	hints = append(hints, "T theme", "? help", "e quit")

	bar := styles.MutedText.Render(strings.Join(hints, "  "))
	if m.filter != "" {
		bar = styles.AccentText.Render(fmt.Sprintf("filter: %s", m.filter)) + "  " + bar
	}
	return bar
}
