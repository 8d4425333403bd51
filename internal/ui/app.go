package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/logtail"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/query"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewTimeline View = iota
	ViewDiagnostics
)

const (
	paneTimeline = iota
	paneDetail
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Comments    *query.Binding[[]spacex.Comment] // nil when comments are disabled
	LogPath     string
	PollTick    time.Duration
	ThemeName   string
	HideDetails bool
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	comments  *query.Binding[[]spacex.Comment]
	logPath   string
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane int
	hideDetails bool
	showHelp    bool

	snapshot    state.Snapshot
	lastUpdated time.Time

	selected    int // index into the flattened visible launches
	filter      string
	filtering   bool
	filterInput textinput.Model

	detailViewport viewport.Model

	logViewport viewport.Model
	logEntries  []logtail.Entry
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultPollTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "mission name"
	input.CharLimit = 64

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		comments:    opts.Comments,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewTimeline,
		hideDetails: opts.HideDetails,
		filterInput: input,
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
			m.logViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.resizeViewports()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelection()
		m.syncComments()
		m.updateDetailViewport()
		return m, nil

	case logBatchMsg:
		m.logEntries = msg.entries
		m.logErr = nil
		m.updateLogViewport()
		return m, nil

	case logErrorMsg:
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.currentView == ViewTimeline {
			m.focusedPane = (m.focusedPane + 1) % 2
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewTimeline), key.Matches(msg, m.keys.Escape):
		m.currentView = ViewTimeline
		return m, nil

	case key.Matches(msg, m.keys.ViewDiagnostics):
		m.currentView = ViewDiagnostics
		return m, readLogCmd(m.logPath)
	}

	switch m.currentView {
	case ViewTimeline:
		return m.handleTimelineKey(msg)
	case ViewDiagnostics:
		return m.handleDiagnosticsKey(msg)
	}
	return m, nil
}

// handleTimelineKey processes keyboard input for the timeline view.
func (m Model) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.filter)
		m.filterInput.CursorEnd()
		cmd := m.filterInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ClearFilter):
		m.applyFilter("")
		return m, nil

	case key.Matches(msg, m.keys.ToggleDetails):
		m.hideDetails = !m.hideDetails
		m.savePrefs()
		m.updateDetailViewport()
		return m, nil
	}

	if m.focusedPane == paneDetail {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	count := len(m.visibleLaunches())
	if count == 0 {
		return m, nil
	}
	prev := m.selected
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selected = min(count-1, m.selected+m.contentHeight()/2)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selected = max(0, m.selected-m.contentHeight()/2)
	}
	if m.selected != prev {
		m.syncComments()
		m.updateDetailViewport()
	}
	return m, nil
}

// handleFilterKey feeds keys to the filter input until it is applied or
// cancelled.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filterInput.Blur()
		m.applyFilter(m.filterInput.Value())
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) applyFilter(value string) {
	m.filter = strings.TrimSpace(value)
	m.selected = 0
	m.clampSelection()
	m.syncComments()
	m.updateDetailViewport()
}

// syncComments points the comments binding at the selected flight. Reusing
// the current key is a no-op on the binding.
func (m *Model) syncComments() {
	if m.comments == nil {
		return
	}
	launch, ok := m.selectedLaunch()
	if !ok {
		return
	}
	flight, ok := launch.FlightNumber()
	if !ok {
		return
	}
	m.comments.Use(m.ctx, spacex.CommentsRequest(flight))
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, HideDetails: m.hideDetails})
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewDiagnostics {
		cmds = append(cmds, readLogCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// renderMain renders the header, command bar and active view.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.currentView {
	case ViewDiagnostics:
		b.WriteString(m.renderDiagnostics())
	default:
		b.WriteString(m.renderTimelineView())
	}
	return b.String()
}

// contentHeight is the height left below the header and command bar.
func (m Model) contentHeight() int {
	return max(1, m.height-2)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Shutdown signal, not a failure.
		return nil
	}
	return err
}
