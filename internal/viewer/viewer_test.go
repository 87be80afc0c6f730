package viewer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hextex/internal/grid"
	"hextex/internal/source"
)

func newTestModel(t *testing.T, size, width int) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))

	src, err := source.Open(path)
	require.NoError(t, err)

	m, err := NewModel(src, width, zerolog.Nop())
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, 64, 1)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestResizeRecomputesVisibleRows(t *testing.T) {
	m := newTestModel(t, 1024, 1)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 24})
	assert.Equal(t, 20, m.engine.VisibleRows())
}

func TestWidthCycleKeepsCursor(t *testing.T) {
	m := newTestModel(t, 64, 1)

	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	require.Equal(t, int64(3), m.engine.Cursor())

	for _, want := range []int{2, 4, 8, 1} {
		m.Update(keyRunes("w"))
		assert.Equal(t, want, m.engine.Layout().GroupWidth)
		assert.Equal(t, int64(3), m.engine.Cursor())
	}
}

func TestEndianToggle(t *testing.T) {
	m := newTestModel(t, 64, 4)
	require.True(t, m.engine.LittleEndian())

	m.Update(keyRunes("e"))
	assert.False(t, m.engine.LittleEndian())
	m.Update(keyRunes("e"))
	assert.True(t, m.engine.LittleEndian())
}

func TestCursorKeysFollowFocusGranularity(t *testing.T) {
	m := newTestModel(t, 64, 4)

	// Hex grid focused: one cell is one group.
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, int64(4), m.engine.Cursor())

	// ASCII grid focused: one cell is one byte.
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, grid.GridASCII, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, int64(5), m.engine.Cursor())
}

func TestCursorDownMovesOneRow(t *testing.T) {
	m := newTestModel(t, 64, 1)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, int64(16), m.engine.Cursor())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, int64(0), m.engine.Cursor())
}

func TestHighlightsStayInLockstep(t *testing.T) {
	m := newTestModel(t, 64, 4)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, m.highlight[grid.GridHex])
	assert.Equal(t, grid.Cell{Row: 0, Col: 4}, m.highlight[grid.GridASCII])
}

func TestGotoPromptAccepts(t *testing.T) {
	m := newTestModel(t, 64, 1)

	m.Update(keyRunes("g"))
	require.Equal(t, ViewGoto, m.view)

	m.Update(keyRunes("1"))
	m.Update(keyRunes("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewMain, m.view)
	assert.Equal(t, int64(31), m.engine.Cursor())
	assert.Empty(t, m.statusMsg)
}

func TestGotoPromptFiltersNonHex(t *testing.T) {
	m := newTestModel(t, 64, 1)

	m.Update(keyRunes("g"))
	m.Update(keyRunes("z"))
	m.Update(keyRunes("a"))

	assert.Equal(t, "a", m.gotoInput.Value())
}

func TestGotoPromptRejectsOutOfRange(t *testing.T) {
	m := newTestModel(t, 64, 1)

	m.Update(keyRunes("g"))
	for _, r := range "ffff" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, int64(0), m.engine.Cursor())
	assert.Contains(t, m.statusMsg, "invalid offset")
}

func TestGotoPromptEscapeCancels(t *testing.T) {
	m := newTestModel(t, 64, 1)

	m.Update(keyRunes("g"))
	m.Update(keyRunes("2"))
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, ViewMain, m.view)
	assert.Equal(t, int64(0), m.engine.Cursor())
}

func TestNavigationKeys(t *testing.T) {
	m := newTestModel(t, 1024, 1)

	m.Update(keyRunes("j"))
	assert.Equal(t, int64(16), m.engine.Top())
	m.Update(keyRunes("k"))
	assert.Equal(t, int64(0), m.engine.Top())

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, m.engine.VisibleBytes(), m.engine.Top())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, int64(1024)-m.engine.VisibleBytes(), m.engine.Top())

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, int64(0), m.engine.Top())
}

func TestViewRendersRows(t *testing.T) {
	m := newTestModel(t, 64, 1)

	out := m.View()
	assert.Contains(t, out, "00000000")
	assert.Contains(t, out, "00000010")
	assert.Contains(t, out, "0F")
}

func TestViewRendersEmptyFile(t *testing.T) {
	m := newTestModel(t, 0, 1)

	out := m.View()
	assert.Contains(t, out, "empty file")
}
