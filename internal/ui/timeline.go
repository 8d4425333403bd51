package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/spacex"
)

// visibleTimeline returns the grouped timeline after the mission filter.
// Filtering happens before grouping so bucket and launch order still follow
// GroupByDate.
func (m Model) visibleTimeline() spacex.Grouped {
	if m.filter == "" {
		return m.snapshot.Timeline
	}
	return spacex.GroupByDate(filterLaunches(m.snapshot.Timeline.Launches(), m.filter))
}

// visibleLaunches flattens the visible timeline in display order.
func (m Model) visibleLaunches() []spacex.Launch {
	return m.visibleTimeline().Launches()
}

func (m Model) selectedLaunch() (spacex.Launch, bool) {
	launches := m.visibleLaunches()
	if m.selected < 0 || m.selected >= len(launches) {
		return spacex.Launch{}, false
	}
	return launches[m.selected], true
}

func (m *Model) clampSelection() {
	count := len(m.visibleLaunches())
	switch {
	case count == 0:
		m.selected = 0
	case m.selected >= count:
		m.selected = count - 1
	case m.selected < 0:
		m.selected = 0
	}
}

// filterLaunches keeps launches whose mission name contains query,
// ignoring case.
func filterLaunches(launches []spacex.Launch, query string) []spacex.Launch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return launches
	}
	var out []spacex.Launch
	for _, l := range launches {
		if strings.Contains(strings.ToLower(l.MissionName), query) {
			out = append(out, l)
		}
	}
	return out
}

// timelineRow is one rendered line of the timeline: a date header or a launch.
type timelineRow struct {
	date   string
	launch *spacex.Launch
	index  int // position in the flattened launches, -1 for headers
}

// timelineRows lays the grouped timeline out as header and launch rows.
func timelineRows(g spacex.Grouped) []timelineRow {
	rows := make([]timelineRow, 0, len(g)+g.Len())
	idx := 0
	for _, bucket := range g {
		rows = append(rows, timelineRow{date: bucket.Date, index: -1})
		for i := range bucket.Launches {
			rows = append(rows, timelineRow{launch: &bucket.Launches[i], index: idx})
			idx++
		}
	}
	return rows
}

// scrollWindow returns the [start, end) slice of total rows that keeps row
// target visible within height rows.
func scrollWindow(total, target, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := target - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

func (m Model) renderTimelineView() string {
	height := m.contentHeight()
	if m.width < LayoutSplitWidth {
		if m.focusedPane == paneDetail {
			return m.renderPane(m.detailViewport.View(), m.width, height, true)
		}
		return m.renderPane(m.renderTimeline(m.width-2, height-2), m.width, height, true)
	}

	leftWidth := int(float64(m.width) * TimelinePaneRatio)
	rightWidth := m.width - leftWidth
	left := m.renderPane(m.renderTimeline(leftWidth-2, height-2), leftWidth, height, m.focusedPane == paneTimeline)
	right := m.renderPane(m.detailViewport.View(), rightWidth, height, m.focusedPane == paneDetail)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderPane(content string, width, height int, focused bool) string {
	styles := m.theme.Styles()
	style := styles.Pane
	if focused {
		style = styles.PaneFocus
	}
	return style.Width(max(0, width-2)).Height(max(0, height-2)).Render(content)
}

// renderTimeline renders the visible timeline into width x height.
func (m Model) renderTimeline(width, height int) string {
	styles := m.theme.Styles()
	launches := m.snapshot.Launches
	grouped := m.visibleTimeline()

	if len(grouped) == 0 {
		switch {
		case launches.Err != nil && len(m.snapshot.Timeline) == 0:
			return styles.DangerText.Render("Failed to load launches: ") +
				styles.MutedText.Render(truncate(launches.Err.Error(), width*2))
		case launches.Loading && len(m.snapshot.Timeline) == 0:
			return styles.MutedText.Render("Loading launches...")
		case m.filter != "":
			return styles.MutedText.Render(fmt.Sprintf("No missions match %q", m.filter))
		default:
			return styles.MutedText.Render("No launches")
		}
	}

	rows := timelineRows(grouped)
	target := 0
	for i, r := range rows {
		if r.index == m.selected {
			target = i
			break
		}
	}
	start, end := scrollWindow(len(rows), target, height)

	lines := make([]string, 0, end-start)
	for _, r := range rows[start:end] {
		if r.launch == nil {
			lines = append(lines, styles.DateHeader.Render(r.date))
			continue
		}
		lines = append(lines, m.renderLaunchRow(*r.launch, r.index == m.selected, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLaunchRow(l spacex.Launch, selected bool, width int) string {
	styles := m.theme.Styles()
	badge := styles.OutcomeStyle(l.Success).Render(strings.ToUpper(l.Success.String()))
	nameWidth := max(8, width-lipgloss.Width(badge)-4)
	name := padRight(truncate(l.MissionName, nameWidth), nameWidth)
	if selected && m.focusedPane == paneTimeline {
		name = styles.Selected.Render(name)
	} else if selected {
		name = styles.AccentText.Render(name)
	} else {
		name = styles.Text.Render(name)
	}
	return "  " + name + " " + badge
}
