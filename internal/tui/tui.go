package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/mini-lrc-player/internal/config"
	"github.com/handiism/mini-lrc-player/internal/debug"
	"github.com/handiism/mini-lrc-player/internal/export"
	"github.com/handiism/mini-lrc-player/internal/loader"
	"github.com/handiism/mini-lrc-player/internal/model"
	"github.com/handiism/mini-lrc-player/internal/player"
	"github.com/handiism/mini-lrc-player/internal/watcher"
	"github.com/mattn/go-runewidth"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

const (
	maxLogs = 10

	// visibleLogs is how many log lines the tracking view shows.
	visibleLogs = 3

	// chromeRows is every row that is not the lyric window: title and
	// margin, status, progress bar, blank lines, logs and help.
	chromeRows = 8 + visibleLogs
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateTracking
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateTracking:
		return "tracking"
	}
	return "unknown"
}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   loader.ProgressLevel
}

// Message types
type (
	// ProgressMsg carries a loader or watcher event.
	ProgressMsg struct {
		Event loader.ProgressEvent
	}

	// LoadedMsg is sent when a (re)load of the lyric source finishes.
	LoadedMsg struct {
		Lyrics model.Lyrics
		Reload bool
	}

	// TickMsg is the periodic time-changed notification.
	TickMsg struct{}

	// FileChangedMsg is sent when the watched lyric file changes.
	FileChangedMsg struct{}
)

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c *player.WallClock) Option {
	return func(m *Model) {
		m.clock = c
	}
}

// WithLoader replaces the loader built from settings.
func WithLoader(l *loader.Loader) Option {
	return func(m *Model) {
		m.loader = l
	}
}

// Model is the Bubble Tea model for the player.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	verbose  bool

	ctx    context.Context
	cancel context.CancelFunc

	loader  *loader.Loader
	events  chan loader.ProgressEvent
	driver  *player.Driver
	clock   *player.WallClock
	watcher *watcher.Watcher

	width  int
	height int
}

// NewModel creates a player model for settings.Source.
func NewModel(settings *config.Settings, opts ...Option) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan loader.ProgressEvent, 32)

	m := Model{
		state:    StateLoading,
		spinner:  sp,
		progress: prog,
		settings: settings,
		logs:     make([]LogEntry, 0),
		verbose:  debug.Enabled(),
		ctx:      ctx,
		cancel:   cancel,
		events:   events,
		driver:   player.NewDriver(model.Lyrics{}, player.Viewport{Height: 10, LineHeight: 1}),
		clock:    player.NewWallClock(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.loader == nil {
		m.loader = loader.NewLoader(settings, m.publish)
	}
	return m
}

// publish forwards an event to the UI without blocking the sender.
func (m Model) publish(event loader.ProgressEvent) {
	select {
	case m.events <- event:
	default:
		debug.Log("dropped progress event: %s", event.Message)
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(false), waitForProgress(m.events))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		m.driver.SetViewport(player.Viewport{Height: float64(m.lyricRows()), LineHeight: 1})
		if m.state == StateTracking {
			m.driver.Step(m.clock.CurrentTime())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.shutdown()
			return m, tea.Quit

		case " ", "space":
			switch m.state {
			case StateLoaded:
				cmds = append(cmds, m.startTracking())
			case StateTracking:
				m.clock.Toggle()
			}

		case "y":
			m.copyActive()
		}

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ProgressMsg:
		m.addLog(msg.Event)
		cmds = append(cmds, waitForProgress(m.events))

	case LoadedMsg:
		m.driver.Reset(msg.Lyrics)
		if msg.Reload {
			if m.state == StateTracking {
				m.driver.Step(m.clock.CurrentTime())
			}
			cmds = append(cmds, m.watchFile())
			break
		}

		m.state = StateLoaded
		cmds = append(cmds, m.startWatcher())
		if !m.settings.StartPaused {
			cmds = append(cmds, m.startTracking())
		}

	case TickMsg:
		if m.state == StateTracking {
			m.driver.Step(m.clock.CurrentTime())
			cmds = append(cmds, m.tick())
		}

	case FileChangedMsg:
		m.addLog(loader.ProgressEvent{Message: "Lyric file changed, reloading", Level: loader.LevelInfo, Source: m.settings.Source})
		cmds = append(cmds, m.load(true))
	}

	return m, tea.Batch(cmds...)
}

// startTracking starts the clock and the tick loop.
func (m *Model) startTracking() tea.Cmd {
	m.state = StateTracking
	m.clock.Start()
	m.driver.Step(m.clock.CurrentTime())
	return m.tick()
}

// tick schedules the next time-changed notification.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.settings.TickInterval(), func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func (m Model) load(reload bool) tea.Cmd {
	ld, ctx, source := m.loader, m.ctx, m.settings.Source
	return func() tea.Msg {
		return LoadedMsg{Lyrics: ld.Load(ctx, source), Reload: reload}
	}
}

func waitForProgress(events <-chan loader.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// startWatcher watches a local lyric file so edits show up live.
func (m *Model) startWatcher() tea.Cmd {
	if !m.settings.WatchFile || m.watcher != nil || loader.Classify(m.settings.Source) != loader.SourceFile {
		return nil
	}

	publish, source := m.publish, m.settings.Source
	w, err := watcher.New(source, watcher.WithOnError(func(err error) {
		publish(loader.ProgressEvent{Message: fmt.Sprintf("Watcher: %v", err), Level: loader.LevelWarning, Source: source})
	}))
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		m.addLog(loader.ProgressEvent{Message: fmt.Sprintf("Cannot watch %s: %v", m.settings.Source, err), Level: loader.LevelWarning})
		return nil
	}

	m.watcher = w
	return m.watchFile()
}

func (m Model) watchFile() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return WatchFileCmd(m.watcher)
}

// WatchFileCmd waits for the next change of the watched file.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

func (m *Model) copyActive() {
	text := m.driver.ActiveContent()
	if text == "" {
		m.addLog(loader.ProgressEvent{Message: "No active line to copy", Level: loader.LevelWarning})
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.addLog(loader.ProgressEvent{Message: fmt.Sprintf("Clipboard: %v", err), Level: loader.LevelError})
		return
	}
	m.addLog(loader.ProgressEvent{Message: "Copied: " + text, Level: loader.LevelSuccess})
}

func (m *Model) addLog(event loader.ProgressEvent) {
	// Filter verbose messages if not in verbose mode
	if event.Level == loader.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m *Model) shutdown() {
	m.cancel()
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// lyricRows is the height of the lyric window in terminal rows.
func (m Model) lyricRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Driver returns the lyric driver.
func (m Model) Driver() *player.Driver {
	return m.driver
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Mini LRC Player"))
	b.WriteString("\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateLoaded, StateTracking:
		b.WriteString(m.viewLyrics())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading " + m.settings.Source + "..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs(maxLogs))

	return b.String()
}

func (m Model) viewLyrics() string {
	var b strings.Builder

	width := m.width
	if width <= 0 {
		width = 80
	}

	lines := m.driver.Lines()
	rows := int(m.driver.Viewport().Height)
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render(centerLine("(no lyrics)", width)))
		b.WriteString("\n")
		rows--
	}

	start := int(m.driver.Offset())
	for i := start; i < start+rows; i++ {
		if i < 0 || i >= len(lines) {
			b.WriteString("\n")
			continue
		}
		row := centerLine(lines[i].Content, width)
		if lines[i].Active {
			b.WriteString(activeStyle.Render(row))
		} else {
			b.WriteString(dimStyle.Render(row))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var now float64
	if m.state == StateTracking {
		now = m.clock.CurrentTime()
	}
	duration := m.driver.Lyrics().Duration()
	b.WriteString(m.progress.ViewAs(playbackPercent(now, duration)))
	b.WriteString("\n")

	status := "▶"
	switch {
	case m.state == StateLoaded:
		status = "■"
	case m.clock.Paused():
		status = "❚❚"
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("%s %s / %s  %d lines",
		status, export.FormatTimestamp(now), export.FormatTimestamp(duration), len(lines))))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs(visibleLogs))

	return b.String()
}

func (m Model) renderLogs(n int) string {
	var b strings.Builder

	logs := m.logs
	if len(logs) > n {
		logs = logs[len(logs)-n:]
	}
	for _, log := range logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case loader.LevelError:
			style = errorStyle
			prefix = "✗"
		case loader.LevelWarning:
			style = warningStyle
			prefix = "!"
		case loader.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case loader.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateLoading:
		return "q: quit"
	case StateLoaded:
		return "space: play • q: quit"
	case StateTracking:
		return "space: pause/resume • y: copy line • q: quit"
	}
	return ""
}

// playbackPercent maps a position onto the progress bar, clamped to [0, 1].
func playbackPercent(now, duration float64) float64 {
	if duration <= 0 || now <= 0 {
		return 0
	}
	if now >= duration {
		return 1
	}
	return now / duration
}

// truncateLine shortens s to at most maxWidth cells, adding "...".
// Wide (CJK) characters count as two cells.
func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// centerLine truncates s to width and pads it to sit in the middle.
func centerLine(s string, width int) string {
	s = truncateLine(s, width)
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// Run starts the player for settings.Source.
func Run(settings *config.Settings) error {
	defer debug.LogEnterExit("tui.Run")()

	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
	}
	return err
}
