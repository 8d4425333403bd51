package ui

import (
	"fmt"
	"strings"

	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
)

// resizeViewports fits the detail and diagnostics viewports to the window.
func (m *Model) resizeViewports() {
	height := max(1, m.contentHeight()-2)
	detailWidth := m.width - 2
	if m.width >= LayoutSplitWidth {
		detailWidth = m.width - int(float64(m.width)*TimelinePaneRatio) - 2
	}
	m.detailViewport.Width = max(1, detailWidth)
	m.detailViewport.Height = height
	m.logViewport.Width = max(1, m.width-2)
	m.logViewport.Height = height
}

// updateDetailViewport re-renders the selected launch into the detail pane.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	launch, ok := m.selectedLaunch()
	if !ok {
		m.detailViewport.SetContent(m.theme.Styles().MutedText.Render("Select a launch to view details"))
		return
	}
	m.detailViewport.SetContent(m.detailContent(launch, m.detailViewport.Width))
	m.detailViewport.GotoTop()
}

func (m Model) detailContent(l spacex.Launch, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(l.MissionName))
	b.WriteString(" ")
	b.WriteString(styles.OutcomeStyle(l.Success).Render(strings.ToUpper(l.Success.String())))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		b.WriteString(styles.MutedText.Render(padRight(label, 8)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}
	field("Flight", l.ID)
	field("Date", l.LaunchDateUTC)
	field("Rocket", l.RocketName)
	field("Site", l.SiteName)

	video := l.EmbedURL()
	if l.VideoID() == spacex.VideoIDError {
		b.WriteString(styles.MutedText.Render(padRight("Video", 8)))
		b.WriteString(styles.WarningText.Render(video))
		b.WriteString("\n")
	} else {
		field("Video", video)
	}

	if !m.hideDetails {
		if details := l.DetailsText(); strings.TrimSpace(details) != "" {
			b.WriteString("\n")
			for _, line := range wrap(details, width) {
				b.WriteString(styles.Text.Render(line))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Comments"))
	b.WriteString("\n")
	b.WriteString(m.commentsSection(l, width))
	return b.String()
}

// commentsSection renders the comments binding state for the launch.
func (m Model) commentsSection(l spacex.Launch, width int) string {
	styles := m.theme.Styles()
	if m.comments == nil {
		return styles.FaintText.Render("Comments disabled (no endpoint configured)")
	}
	flight, ok := l.FlightNumber()
	if !ok {
		return styles.FaintText.Render("No flight number for this launch")
	}
	return renderComments(styles, m.snapshot.CommentsFor(spacex.CommentsRequest(flight).Key()), width)
}

func renderComments(styles Styles, st state.CommentsState, width int) string {
	switch {
	case st.Loading:
		return styles.MutedText.Render("Loading comments...")
	case st.Err != nil:
		return styles.DangerText.Render("Comments failed: ") + styles.MutedText.Render(st.Err.Error())
	case len(st.Data) == 0:
		return styles.FaintText.Render("No comments yet")
	}

	var b strings.Builder
	for i, c := range st.Data {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.InfoText.Render(c.Author))
		if c.Date != "" {
			b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %s", c.Date)))
		}
		b.WriteString("\n")
		for _, line := range wrap(c.Body, width-2) {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}
