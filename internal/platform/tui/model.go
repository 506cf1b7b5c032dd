package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushbox/internal/config"
	"github.com/vovakirdan/pushbox/internal/core"
	"github.com/vovakirdan/pushbox/internal/levels"
	"github.com/vovakirdan/pushbox/internal/sokoban"
	"github.com/vovakirdan/pushbox/internal/storage"
)

// PlayOptions configures a play session.
type PlayOptions struct {
	HistoryLimit int           // Undo depth, 0 = unbounded
	AutoAdvance  bool          // Open the next level after a win
	AdvanceDelay time.Duration // Pause before auto-advance
	Mouse        bool          // Click a neighbouring cell to move
	Logger       *log.Logger
}

// PlayOptionsFrom builds play options from the loaded configuration.
func PlayOptionsFrom(cfg config.Config, logger *log.Logger) PlayOptions {
	return PlayOptions{
		HistoryLimit: cfg.History.Limit,
		AutoAdvance:  cfg.UI.AutoAdvance,
		AdvanceDelay: cfg.UI.AdvanceDelay(),
		Mouse:        cfg.UI.Mouse,
		Logger:       logger,
	}
}

// Layout rows reserved around the board.
const (
	headerRows = 2 // Title and spacer
	footerRows = 3 // Spacer, HUD and status
)

// Model is the Bubble Tea model for playing a pack.
type Model struct {
	pack      levels.Pack
	session   *sokoban.Session
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      PlayOptions
	logger    *log.Logger
	keyMapper *KeyMapper
	help      help.Model

	best       storage.Progress // Saved progress for the current level
	status     string
	newBest    bool
	ticks      int
	solvedAt   int // Tick of the last completion
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model for the given pack. An empty levelID
// starts at the first level without a saved completion.
func NewModel(pack levels.Pack, levelID string, store *storage.Store, cfg core.RuntimeConfig, opts PlayOptions) (Model, error) {
	if len(pack.Levels) == 0 {
		return Model{}, fmt.Errorf("pack %s has no levels", pack.ID)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var level sokoban.Level
	if levelID == "" {
		level = firstUnsolved(pack, store, logger)
	} else {
		var err error
		if level, err = pack.Level(levelID); err != nil {
			return Model{}, err
		}
	}

	session := sokoban.NewSession(level,
		sokoban.WithHistoryLimit(opts.HistoryLimit),
		sokoban.WithReporter(storage.Reporter{Store: store, Logger: logger}),
	)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		pack:      pack,
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
	m.loadBest()
	return m, nil
}

func firstUnsolved(pack levels.Pack, store *storage.Store, logger *log.Logger) sokoban.Level {
	if store == nil {
		return pack.Levels[0]
	}
	progress, err := store.PackProgress(pack.ID)
	if err != nil {
		logger.Warn("loading progress", "pack", pack.ID, "err", err)
		return pack.Levels[0]
	}
	for _, lvl := range pack.Levels {
		if !progress[lvl.ID].Completed {
			return lvl
		}
	}
	return pack.Levels[0]
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keyMapper.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit

	case core.ActionUndo:
		if m.session.Undo() {
			m.status = ""
		} else {
			m.status = "Nothing to undo"
		}

	case core.ActionReset:
		m.session.Reset()
		m.status = "Level reset"

	case core.ActionNext:
		if next, ok := m.pack.Next(m.session.Level().ID); ok {
			m.load(next)
		} else {
			m.status = "This is the last level"
		}

	case core.ActionPrev:
		if prev, ok := m.pack.Prev(m.session.Level().ID); ok {
			m.load(prev)
		} else {
			m.status = "This is the first level"
		}

	default:
		if d, ok := actionDirection(action); ok {
			m.move(d)
		}
	}

	return m, nil
}

// handleMouse moves the player toward a clicked neighbouring cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	pos, ok := screenToGrid(m.boardRect(), msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if d, ok := sokoban.DirectionBetween(m.session.State().Player, pos); ok {
		m.move(d)
	}
	return m, nil
}

// handleResize processes window resize events. The level state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances timers and performs auto-advance after a win.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++

	if m.session.Complete() && m.opts.AutoAdvance && m.ticks-m.solvedAt >= m.advanceTicks() {
		if next, ok := m.pack.Next(m.session.Level().ID); ok {
			m.load(next)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) advanceTicks() int {
	return int(m.opts.AdvanceDelay * time.Duration(m.config.TickRate) / time.Second)
}

// move applies a direction and handles the transition into the solved state.
func (m *Model) move(d sokoban.Direction) {
	prev := m.best
	if !m.session.Move(d) {
		return
	}
	m.status = ""

	if m.session.Complete() {
		moves := m.session.Moves()
		m.newBest = !prev.HasBest() || moves < prev.BestMoves
		m.solvedAt = m.ticks
		m.loadBest()
		m.status = m.solvedMessage(moves)

		snap := m.session.Snapshot()
		m.logger.Debug("level solved", "pack", snap.Pack, "level", snap.Level, "moves", snap.Moves, "path", snap.Path)
	}
}

func (m *Model) solvedMessage(moves int) string {
	msg := fmt.Sprintf("Solved in %d moves!", moves)
	if m.newBest {
		msg += " New best."
	}
	if _, ok := m.pack.Next(m.session.Level().ID); !ok {
		return msg + " Pack finished."
	}
	if m.opts.AutoAdvance {
		return msg + " Next level coming up..."
	}
	return msg + " Press n for the next level."
}

// load switches the session to another level of the pack.
func (m *Model) load(level sokoban.Level) {
	m.session.Load(level)
	m.status = ""
	m.newBest = false
	m.loadBest()
	m.logger.Debug("level loaded", "pack", level.Pack, "level", level.ID)
}

func (m *Model) loadBest() {
	lvl := m.session.Level()
	m.best = storage.Progress{Pack: lvl.Pack, Level: lvl.ID}
	if m.store == nil {
		return
	}
	p, err := m.store.Progress(lvl.Pack, lvl.ID)
	if err != nil {
		m.logger.Warn("loading progress", "pack", lvl.Pack, "level", lvl.ID, "err", err)
		return
	}
	m.best = p
}

// boardRect returns where the board is drawn on the screen.
func (m Model) boardRect() core.Rect {
	area := core.NewRect(0, headerRows, m.screen.Width(), core.Max(m.screen.Height()-headerRows-footerRows, 0))
	return boardRect(area, m.session.State().Grid)
}

// saveScreenshot writes the current screen as text to ~/.pushbox/screenshots.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "Screenshot failed"
		return
	}
	dir := filepath.Join(home, ".pushbox", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		m.status = "Screenshot failed"
		return
	}

	lvl := m.session.Level()
	name := fmt.Sprintf("%s-%s_%s.txt", lvl.Pack, lvl.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		m.status = "Screenshot failed"
		return
	}
	m.status = "Saved " + path
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	s := m.screen
	s.Clear()

	lvl := m.session.Level()
	state := m.session.State()

	title := fmt.Sprintf("%s · %s", m.pack.Title, lvl.Name)
	s.DrawTextCentered(0, title, core.ColorBrightWhite)

	board := m.boardRect()
	drawBoard(s, state.Grid, board.X, board.Y)

	s.DrawHLine(0, s.Height()-3, s.Width(), '─', core.ColorGray)
	hud := fmt.Sprintf("Level %d/%d   Moves %d   Best %s   Undo %d",
		m.pack.Index(lvl.ID)+1, m.pack.Len(), state.Moves, m.bestText(), m.session.HistoryLen())
	s.DrawTextCentered(s.Height()-2, hud, core.ColorGray)

	if m.status != "" {
		color := core.ColorYellow
		if state.LevelComplete {
			color = core.ColorBrightGreen
		}
		s.DrawTextCentered(s.Height()-1, m.status, color)
	}
}

func (m Model) bestText() string {
	if !m.best.HasBest() {
		return "-"
	}
	return fmt.Sprintf("%d", m.best.BestMoves)
}

// View renders the screen buffer and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys)
}

// State returns the current engine state.
func (m Model) State() sokoban.GameState {
	return m.session.State()
}

// Level returns the level being played.
func (m Model) Level() sokoban.Level {
	return m.session.Level()
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing the pack. It returns true when
// the player pressed back rather than quit.
func Run(pack levels.Pack, levelID string, store *storage.Store, cfg core.RuntimeConfig, opts PlayOptions) (back bool, err error) {
	model, err := NewModel(pack, levelID, store, cfg, opts)
	if err != nil {
		return false, err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	finalModel, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
