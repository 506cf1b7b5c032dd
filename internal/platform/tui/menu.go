package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushbox/internal/core"
	"github.com/vovakirdan/pushbox/internal/levels"
	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/storage"
)

// MenuSelection is the level chosen in the menu.
type MenuSelection struct {
	PackID  string
	LevelID string
}

// MenuModel lets users choose a pack and then a level.
type MenuModel struct {
	packs         []registry.PackInfo
	cursor        int
	levelCursor   int
	inLevelSelect bool
	pack          levels.Pack
	progress      map[string]storage.Progress
	width         int
	height        int
	store         *storage.Store
	config        core.RuntimeConfig
	logger        *log.Logger
	keyMapper     *KeyMapper
	selected      *MenuSelection
	quitting      bool
	openProgress  bool // True if user pressed Tab for the progress board
}

// NewMenuModel creates a new menu model listing all registered packs.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) MenuModel {
	if logger == nil {
		logger = log.Default()
	}
	return MenuModel{
		packs:     registry.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		logger:    logger,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handlePackSelectKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handlePackSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.packs)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.packs) > 0 {
			m.openPack(m.packs[m.cursor].ID)
		}

	case MenuActionProgress:
		m.openProgress = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}

	case MenuActionDown:
		if m.levelCursor < m.pack.Len()-1 {
			m.levelCursor++
		}

	case MenuActionSelect:
		m.selected = &MenuSelection{
			PackID:  m.pack.ID,
			LevelID: m.pack.Levels[m.levelCursor].ID,
		}
		return m, tea.Quit

	case MenuActionBack:
		m.inLevelSelect = false

	case MenuActionProgress:
		m.openProgress = true
		return m, tea.Quit
	}

	return m, nil
}

// openPack switches to level selection, placing the cursor on the first
// unsolved level.
func (m *MenuModel) openPack(id string) {
	pack, err := registry.Get(id)
	if err != nil {
		m.logger.Warn("opening pack", "pack", id, "err", err)
		return
	}

	m.pack = pack
	m.progress = nil
	if m.store != nil {
		if m.progress, err = m.store.PackProgress(id); err != nil {
			m.logger.Warn("loading progress", "pack", id, "err", err)
		}
	}

	m.levelCursor = 0
	for i, lvl := range pack.Levels {
		if !m.progress[lvl.ID].Completed {
			m.levelCursor = i
			break
		}
	}
	m.inLevelSelect = true
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewPackSelect()
}

func (m MenuModel) viewPackSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P U S H B O X", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a pack", m.width))
	b.WriteString("\n\n")

	if len(m.packs) == 0 {
		b.WriteString(centerText("No packs available.", m.width))
		b.WriteString("\n")
	}

	for i, p := range m.packs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %3d levels", cursor, p.Title, p.Levels)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Open  |  Tab: Progress  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	solved := 0
	for _, p := range m.progress {
		if p.Completed {
			solved++
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.pack.Title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%d of %d solved", solved, m.pack.Len()), m.width))
	b.WriteString("\n\n")

	// Keep the cursor visible on short terminals.
	visible := core.Max(m.height-9, 1)
	start := core.Clamp(m.levelCursor-visible/2, 0, core.Max(m.pack.Len()-visible, 0))
	end := core.Min(start+visible, m.pack.Len())

	for i := start; i < end; i++ {
		lvl := m.pack.Levels[i]
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		mark := " "
		best := ""
		if p, ok := m.progress[lvl.ID]; ok && p.Completed {
			mark = "✓"
			if p.HasBest() {
				best = fmt.Sprintf("best %d", p.BestMoves)
			}
		}

		line := fmt.Sprintf("%s%s %3d. %-24s %s", cursor, mark, i+1, lvl.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Packs  |  Tab: Progress  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsProgress returns true if user requested the progress board.
func (m MenuModel) WantsProgress() bool {
	return m.openProgress
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection     *MenuSelection
	Config        core.RuntimeConfig
	WantsProgress bool
	Quit          bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, logger),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsProgress():
		result.WantsProgress = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
