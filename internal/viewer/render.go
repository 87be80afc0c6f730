package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hextex/internal/grid"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderPromptLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderStatus() string {
	l := m.engine.Layout()

	endian := "LE"
	if !m.engine.LittleEndian() {
		endian = "BE"
	}

	info := fmt.Sprintf(" %s | %d bytes | offset 0x%08X | %dx%d | width %d | ",
		filepath.Base(m.src.Path()), m.src.Size(), m.engine.Cursor(),
		l.Columns, m.engine.VisibleRows(), l.GroupWidth)

	bar := m.styles.Status.Render(info) + m.styles.StatusHighlight.Render(endian+" ")
	return m.styles.Status.Width(m.width).Render(bar)
}

// renderHeader draws the column labels for both grids, marking the cursor's
// hex column the way the offset gutter marks its row.
func (m *Model) renderHeader() string {
	l := m.engine.Layout()
	cursorCol := m.highlight[grid.GridHex].Col

	parts := make([]string, len(l.HexHeaders))
	for i, label := range l.HexHeaders {
		style := m.styles.Header
		if i == cursorCol {
			style = m.styles.OffsetActive
		}
		parts[i] = style.Render(label)
	}

	return strings.Repeat(" ", 10) +
		strings.Join(parts, " ") +
		"  " +
		m.styles.Header.Render(strings.Join(l.ASCIIHeaders, ""))
}

func (m *Model) renderRows() string {
	rows, err := m.engine.Rows()
	if err != nil {
		return m.styles.Notice.Render(fmt.Sprintf("read error: %v", err))
	}

	l := m.engine.Layout()
	lines := make([]string, 0, len(rows))

	for i, row := range rows {
		gutterStyle := m.styles.Offset
		if i == m.highlight[grid.GridHex].Row {
			gutterStyle = m.styles.OffsetActive
		}
		gutter := gutterStyle.Render(fmt.Sprintf("%08X", row.Offset)) + "  "

		hexParts := make([]string, l.Columns)
		for col := 0; col < l.Columns; col++ {
			// A dropped partial trailing group leaves a blank cell.
			text := strings.Repeat("  ", l.GroupWidth)
			if col < len(row.Hex) {
				text = row.Hex[col]
			}
			hexParts[col] = m.cellStyle(grid.GridHex, i, col).Render(text)
		}

		var ascii strings.Builder
		for col := 0; col < len(row.ASCII); col++ {
			ascii.WriteString(m.cellStyle(grid.GridASCII, i, col).Render(row.ASCII[col]))
		}

		lines = append(lines, gutter+strings.Join(hexParts, " ")+"  "+ascii.String())
	}

	if len(lines) == 0 {
		return m.styles.HelpDesc.Render("empty file")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) cellStyle(g grid.Grid, row, col int) lipgloss.Style {
	if m.highlight[g].Row != row || m.highlight[g].Col != col {
		return m.styles.Normal
	}
	if g == m.focus {
		return m.styles.Cursor
	}
	return m.styles.Mirror
}

func (m *Model) renderPromptLine() string {
	if m.view == ViewGoto {
		return m.styles.Prompt.Render("goto: ") + m.gotoInput.View()
	}
	if m.statusMsg != "" {
		return m.styles.Notice.Render(m.statusMsg)
	}
	return ""
}
