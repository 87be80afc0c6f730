package viewer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"hextex/internal/config"
	"hextex/internal/grid"
	"hextex/internal/source"
)

type View int

const (
	ViewMain View = iota
	ViewGoto
)

// Lines of chrome around the byte rows: status bar, column header, prompt or
// notice line, help footer.
const chromeRows = 4

const defaultVisibleRows = 16

// Model is the display adapter: it renders the two grids from the engine's
// state and translates key presses into engine operations. It never does
// offset arithmetic itself.
type Model struct {
	engine    *grid.Engine
	src       *source.File
	config    *config.Config
	styles    *config.Styles
	keys      KeyMap
	help      help.Model
	gotoInput textinput.Model

	view  View
	focus grid.Grid

	// Each grid's highlighted cell, updated only through the engine's
	// conversion pair.
	highlight map[grid.Grid]grid.Cell

	width     int
	height    int
	statusMsg string
	log       zerolog.Logger
}

func NewModel(src *source.File, groupWidth int, logger zerolog.Logger) (*Model, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	engine, err := grid.NewEngine(src, groupWidth, defaultVisibleRows)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "offset (hex)"
	ti.Prompt = "0x"
	ti.CharLimit = 16

	m := &Model{
		engine:    engine,
		src:       src,
		config:    cfg,
		styles:    config.NewStyles(&cfg.Theme),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gotoInput: ti,
		focus:     grid.GridHex,
		highlight: make(map[grid.Grid]grid.Cell),
		log:       logger,
	}
	m.syncHighlights()

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.engine.SetVisibleRows(msg.Height - chromeRows)
		m.syncHighlights()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	if m.view == ViewGoto {
		return m.handleGotoKey(msg)
	}
	return m.handleMainKey(msg)
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Endian):
		m.engine.ToggleEndianness()
		m.log.Debug().Bool("littleEndian", m.engine.LittleEndian()).Msg("endianness toggled")

	case key.Matches(msg, m.keys.Width):
		m.engine.CycleGroupWidth()
		m.syncHighlights()
		m.log.Debug().Int("width", m.engine.Layout().GroupWidth).Msg("group width changed")

	case key.Matches(msg, m.keys.Goto):
		m.view = ViewGoto
		m.gotoInput.SetValue("")
		m.gotoInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.SwitchGrid):
		m.focus = m.focus.Other()

	case key.Matches(msg, m.keys.CursorUp):
		m.moveCursor(-m.cellsPerRow())
	case key.Matches(msg, m.keys.CursorDown):
		m.moveCursor(m.cellsPerRow())
	case key.Matches(msg, m.keys.CursorLeft):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.CursorRight):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.LineUp):
		m.engine.MoveLine(-1)
		m.syncHighlights()
	case key.Matches(msg, m.keys.LineDown):
		m.engine.MoveLine(1)
		m.syncHighlights()
	case key.Matches(msg, m.keys.PageUp):
		m.engine.MovePage(-1)
		m.syncHighlights()
	case key.Matches(msg, m.keys.PageDown):
		m.engine.MovePage(1)
		m.syncHighlights()
	case key.Matches(msg, m.keys.Home):
		m.engine.Home()
		m.syncHighlights()
	case key.Matches(msg, m.keys.End):
		m.engine.End()
		m.syncHighlights()
	}

	return m, nil
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.view = ViewMain
		m.gotoInput.Blur()
		return m, nil

	case tea.KeyEnter:
		m.submitGoto()
		m.view = ViewMain
		m.gotoInput.Blur()
		return m, nil

	case tea.KeyRunes:
		// The prompt takes hex digits only.
		for _, r := range msg.Runes {
			if !isHexRune(r) {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *Model) submitGoto() {
	input := m.gotoInput.Value()
	if input == "" {
		return
	}

	cell, ok := m.engine.GotoOffset(input)
	if !ok {
		m.statusMsg = "invalid offset: 0x" + input
		return
	}

	m.highlight[grid.GridHex] = cell
	if mirror, visible := m.engine.OffsetToCell(m.engine.Cursor(), grid.GridASCII); visible {
		m.highlight[grid.GridASCII] = mirror
	}
	m.log.Debug().Int64("cursor", m.engine.Cursor()).Msg("goto offset")
}

// cellsPerRow is one vertical step in the focused grid.
func (m *Model) cellsPerRow() int {
	if m.focus == grid.GridHex {
		return m.engine.Layout().Columns
	}
	return m.engine.Layout().RowDepth
}

// moveCursor moves the focused grid's cursor and routes the resulting cell
// event through the engine, which mirrors it onto the other grid.
func (m *Model) moveCursor(deltaCells int) {
	m.engine.MoveCursor(deltaCells, m.focus)
	cell, ok := m.engine.OffsetToCell(m.engine.Cursor(), m.focus)
	if !ok {
		return
	}
	m.applyCell(cell.Row, cell.Col, m.focus)
}

// applyCell is the single entry point for cursor events raised by either
// grid. Events arriving while the engine is still applying a programmatic
// move are echoes and are dropped by the engine.
func (m *Model) applyCell(row, col int, g grid.Grid) {
	mirror, ok := m.engine.SetCursorFromCell(row, col, g)
	if !ok {
		return
	}
	if own, visible := m.engine.OffsetToCell(m.engine.Cursor(), g); visible {
		m.highlight[g] = own
	}
	m.highlight[g.Other()] = mirror
	m.engine.FinishSync()
}

// syncHighlights re-derives both grids' highlighted cells from the cursor
// after a scroll or layout change.
func (m *Model) syncHighlights() {
	for _, g := range []grid.Grid{grid.GridHex, grid.GridASCII} {
		if cell, ok := m.engine.OffsetToCell(m.engine.Cursor(), g); ok {
			m.highlight[g] = cell
		}
	}
}

func isHexRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
