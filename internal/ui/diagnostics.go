package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/logtail"
)

type logBatchMsg struct {
	entries []logtail.Entry
}

type logErrorMsg struct {
	err error
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Read(path, LogTailLimit)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logBatchMsg{entries: entries}
	}
}

// handleDiagnosticsKey scrolls the diagnostics viewport.
func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// updateLogViewport re-renders the log entries, following the tail when the
// viewport was already at the bottom.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	follow := m.logViewport.AtBottom()
	m.logViewport.SetContent(m.formatLogEntries())
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m Model) formatLogEntries() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render("Cannot read log: ") + styles.MutedText.Render(m.logErr.Error())
	}
	if len(m.logEntries) == 0 {
		return styles.MutedText.Render("No log entries in " + m.logPath)
	}

	lines := make([]string, 0, len(m.logEntries))
	for _, e := range m.logEntries {
		lines = append(lines, formatLogEntry(styles, e))
	}
	return strings.Join(lines, "\n")
}

func formatLogEntry(styles Styles, e logtail.Entry) string {
	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
	}
	if e.Level != "" {
		parts = append(parts, levelStyle(styles, e.Level).Render(padRight(strings.ToUpper(e.Level), 5)))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	if fields := e.FieldString(); fields != "" {
		parts = append(parts, styles.MutedText.Render(fields))
	}
	if e.Error != "" {
		parts = append(parts, styles.DangerText.Render("error="+e.Error))
	}
	return strings.Join(parts, " ")
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warning", "warn":
		return styles.WarningText
	case "debug", "trace":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}

func (m Model) renderDiagnostics() string {
	return m.renderPane(m.logViewport.View(), m.width, m.contentHeight(), true)
}
