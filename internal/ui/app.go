package ui

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/queueboard/internal/metrics"
	"github.com/five82/queueboard/internal/state"
)

// Options configures the UI.
type Options struct {
	Board      state.Board
	ParkName   string
	CycleEvery time.Duration
	UTCOffset  time.Duration
	ThemeName  string
	Logger     *zap.Logger
	Metrics    *metrics.Collector // nil disables metrics
	Now        func() time.Time   // nil uses time.Now
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	parkName   string
	cycleEvery time.Duration
	utcOffset  time.Duration
	logger     *zap.Logger
	metrics    *metrics.Collector
	now        func() time.Time
	keys       keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	paused   bool
	showHelp bool

	// Data state
	board     state.Board
	landNames []string
	selector  state.Selector

	// Rendered state
	rideViewport viewport.Model
	rideContent  string
	rideList     rideList
	clock        string
	lastUpdated  string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	cycleEvery := opts.CycleEvery
	if cycleEvery <= 0 {
		cycleEvery = DefaultCycleInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeName := opts.ThemeName
	if !slices.Contains(ThemeNames(), themeName) {
		if themeName != "" {
			logger.Warn("unknown theme, using default",
				zap.String("theme", themeName),
				zap.Strings("available", ThemeNames()),
			)
		}
		themeName = themeOrder[0]
	}

	sample, ok := opts.Board.FreshnessSample()

	m := Model{
		parkName:     opts.ParkName,
		cycleEvery:   cycleEvery,
		utcOffset:    opts.UTCOffset,
		logger:       logger,
		metrics:      opts.Metrics,
		now:          now,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(themeName),
		board:        opts.Board,
		landNames:    opts.Board.LandNames(),
		selector:     state.NewSelector(opts.Board.LandCount()),
		rideViewport: viewport.New(0, 0),
		clock:        formatClock(now()),
		lastUpdated:  lastUpdatedLine(sample, ok, opts.UTCOffset),
	}
	m.refreshRideList(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("queueboard"),
		clockCmd(),
		cycleCmd(m.cycleEvery),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewport()
		m.refreshRideList(false)
		return m, nil

	case clockMsg:
		m.clock = formatClock(time.Time(msg))
		return m, clockCmd()

	case cycleMsg:
		if !m.paused {
			m.stepLand(1, metrics.TriggerTimer)
		}
		return m, cycleCmd(m.cycleEvery)
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
		// Any key closes help; ctrl+c still quits.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.logger.Info("theme changed", zap.String("theme", m.theme.Name))
		m.refreshRideList(false)
		return m, nil

	case key.Matches(msg, m.keys.NextLand):
		m.stepLand(1, metrics.TriggerUser)
		return m, nil

	case key.Matches(msg, m.keys.PrevLand):
		m.stepLand(-1, metrics.TriggerUser)
		return m, nil

	case key.Matches(msg, m.keys.JumpLand):
		m.selectLand(int(msg.String()[0]-'1'), metrics.TriggerUser)
		return m, nil

	case key.Matches(msg, m.keys.ToggleCycle):
		m.paused = !m.paused
		m.logger.Info("land cycling toggled", zap.Bool("paused", m.paused))
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.rideViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.rideViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.rideViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.rideViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.rideViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.rideViewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.rideViewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.rideViewport.PageUp()
	}

	return m, nil
}

// stepLand moves the selection forward (delta > 0) or back and re-renders.
func (m *Model) stepLand(delta int, trigger string) {
	before := m.selector.Index()
	if delta < 0 {
		m.selector.Retreat()
	} else {
		m.selector.Advance()
	}
	if m.selector.Index() != before {
		m.landChanged(trigger)
	}
}

// selectLand jumps to land i when it exists.
func (m *Model) selectLand(i int, trigger string) {
	before := m.selector.Index()
	if !m.selector.SetIndex(i) || m.selector.Index() == before {
		return
	}
	m.landChanged(trigger)
}

func (m *Model) landChanged(trigger string) {
	m.refreshRideList(true)
	m.metrics.LandSwitched(trigger)
	m.logger.Debug("land selected",
		zap.Int("index", m.selector.Index()),
		zap.String("land", m.rideList.land),
		zap.String("trigger", trigger),
	)
}

// refreshRideList re-derives the list and replaces the viewport content only
// when the rendered text changed.
func (m *Model) refreshRideList(resetScroll bool) {
	m.rideList = renderRideList(m.board, m.selector)
	content := m.styleRideList(m.rideList, m.rideViewport.Width)
	if content != m.rideContent {
		m.rideViewport.SetContent(content)
		m.rideContent = content
	}
	if resetScroll {
		m.rideViewport.GotoTop()
	}
}

func (m *Model) resizeViewport() {
	m.rideViewport.Width = max(m.width-4, MinRideListWidth)
	m.rideViewport.Height = max(m.height-chromeLines, 1)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderLandStrip(),
		m.renderRidePanel(),
		m.renderClock(),
		m.renderLastUpdated(),
		m.renderCommandBar(),
	)
}

// Messages

type cycleMsg time.Time

// Commands

func cycleCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return cycleMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
