package grid

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ByteSource supplies the bytes being viewed. Bytes returns at most count
// bytes, fewer only at end of file, and never errors for an in-range offset.
type ByteSource interface {
	Size() int64
	Bytes(offset int64, count int) ([]byte, error)
}

// Grid identifies one of the two synchronized views.
type Grid int

const (
	GridHex Grid = iota
	GridASCII
)

// Other returns the opposite grid.
func (g Grid) Other() Grid {
	if g == GridHex {
		return GridASCII
	}
	return GridHex
}

// Cell is a (row, column) position within the visible window of one grid.
type Cell struct {
	Row int
	Col int
}

// Row is one rendered viewport row.
type Row struct {
	Offset int64
	Hex    []string
	ASCII  []string
}

// Engine owns the viewport state: the top-of-view offset, the cursor offset
// shared by both grids, and the current column layout. All navigation goes
// through it, and both grids convert between offsets and cells through its
// single conversion pair so they can never disagree on the cursor.
type Engine struct {
	src          ByteSource
	layout       Layout
	littleEndian bool
	top          int64
	cursor       int64
	visibleRows  int
	syncing      bool
}

var widthCycle = [...]int{1, 2, 4, 8}

// NewEngine builds an engine over src with the given initial group width and
// visible row count.
func NewEngine(src ByteSource, groupWidth, visibleRows int) (*Engine, error) {
	l, err := Derive(groupWidth, DefaultRowBytes)
	if err != nil {
		return nil, err
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	return &Engine{
		src:          src,
		layout:       l,
		littleEndian: true,
		visibleRows:  visibleRows,
	}, nil
}

func (e *Engine) Layout() Layout      { return e.layout }
func (e *Engine) Top() int64          { return e.top }
func (e *Engine) Cursor() int64       { return e.cursor }
func (e *Engine) LittleEndian() bool  { return e.littleEndian }
func (e *Engine) VisibleRows() int    { return e.visibleRows }
func (e *Engine) VisibleBytes() int64 { return int64(e.visibleRows) * int64(e.layout.RowDepth) }

// SetVisibleRows resizes the window, keeping the offsets in range.
func (e *Engine) SetVisibleRows(n int) {
	if n < 1 {
		n = 1
	}
	e.visibleRows = n
	e.top = clamp64(e.top, 0, e.maxTop())
	e.clampCursor()
}

func (e *Engine) maxTop() int64 {
	m := e.src.Size() - e.VisibleBytes()
	if m < 0 {
		m = 0
	}
	return m
}

// MoveLine scrolls the window by delta rows, saturating at the file bounds.
func (e *Engine) MoveLine(delta int) {
	e.scroll(int64(delta) * int64(e.layout.RowDepth))
}

// MovePage scrolls the window by delta windows, saturating at the file bounds.
func (e *Engine) MovePage(delta int) {
	e.scroll(int64(delta) * e.VisibleBytes())
}

// Home scrolls to the start of the file.
func (e *Engine) Home() {
	e.top = 0
	e.clampCursor()
}

// End scrolls to the last full window.
func (e *Engine) End() {
	e.top = e.maxTop()
	e.clampCursor()
}

func (e *Engine) scroll(delta int64) {
	e.top = clamp64(e.top+delta, 0, e.maxTop())
	e.clampCursor()
}

// clampCursor keeps the cursor inside the visible window after a scroll,
// preserving it when it is still on screen.
func (e *Engine) clampCursor() {
	size := e.src.Size()
	if size == 0 {
		e.cursor = 0
		return
	}
	last := e.top + e.VisibleBytes() - 1
	if last > size-1 {
		last = size - 1
	}
	e.cursor = clamp64(e.cursor, e.top, last)
}

// GotoOffset parses input as a hexadecimal offset and moves the cursor there,
// repositioning the window so the cursor row is visible. Invalid hex or an
// offset outside the file leaves all state unchanged and returns false. The
// returned cell is the hex-grid position for the display to highlight.
func (e *Engine) GotoOffset(input string) (Cell, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(input), 16, 63)
	if err != nil {
		return Cell{}, false
	}
	off := int64(v)
	if off >= e.src.Size() {
		return Cell{}, false
	}

	e.cursor = off
	depth := int64(e.layout.RowDepth)
	e.top = clamp64(off/depth*depth, 0, e.maxTop())

	cell, _ := e.OffsetToCell(off, GridHex)
	return cell, true
}

// SetGroupWidth switches the grouping, rebuilding the column layout. The
// cursor offset is preserved byte-exact; only its displayed column changes.
func (e *Engine) SetGroupWidth(w int) error {
	l, err := Derive(w, e.layout.RowDepth)
	if err != nil {
		return err
	}
	e.layout = l
	return nil
}

// CycleGroupWidth advances 1 -> 2 -> 4 -> 8 -> 1.
func (e *Engine) CycleGroupWidth() {
	for i, w := range widthCycle {
		if w == e.layout.GroupWidth {
			_ = e.SetGroupWidth(widthCycle[(i+1)%len(widthCycle)])
			return
		}
	}
}

// ToggleEndianness flips the decode order. No offsets move; only the
// rendered hex strings change.
func (e *Engine) ToggleEndianness() {
	e.littleEndian = !e.littleEndian
}

// cellWidth is the byte granularity of one cell in the given grid.
func (e *Engine) cellWidth(g Grid) int64 {
	if g == GridHex {
		return int64(e.layout.GroupWidth)
	}
	return 1
}

// OffsetToCell maps a byte offset to its (row, column) in the given grid.
// It reports false when the offset is outside the visible window.
func (e *Engine) OffsetToCell(off int64, g Grid) (Cell, bool) {
	if off < e.top || off >= e.top+e.VisibleBytes() || off >= e.src.Size() {
		return Cell{}, false
	}
	rel := off - e.top
	depth := int64(e.layout.RowDepth)
	return Cell{
		Row: int(rel / depth),
		Col: int((rel % depth) / e.cellWidth(g)),
	}, true
}

// CellToOffset is the inverse of OffsetToCell at the grid's own granularity.
func (e *Engine) CellToOffset(row, col int, g Grid) int64 {
	return e.top + int64(row)*int64(e.layout.RowDepth) + int64(col)*e.cellWidth(g)
}

// MoveCursor moves the cursor by delta cells at the given grid's granularity,
// scrolling the window when the cursor would leave it.
func (e *Engine) MoveCursor(delta int, g Grid) {
	size := e.src.Size()
	if size == 0 {
		return
	}
	e.cursor = clamp64(e.cursor+int64(delta)*e.cellWidth(g), 0, size-1)
	e.ensureCursorVisible()
}

func (e *Engine) ensureCursorVisible() {
	depth := int64(e.layout.RowDepth)
	if e.cursor < e.top {
		rows := (e.top - e.cursor + depth - 1) / depth
		e.top = clamp64(e.top-rows*depth, 0, e.maxTop())
	} else if e.cursor >= e.top+e.VisibleBytes() {
		rows := (e.cursor - e.top - e.VisibleBytes() + depth) / depth
		e.top = clamp64(e.top+rows*depth, 0, e.maxTop())
	}
}

// SetCursorFromCell handles a cursor event raised by one grid: the cursor
// offset is updated at that grid's granularity and the cell the other grid
// must highlight is returned. The engine stays in the syncing state until
// FinishSync so that the mirrored highlight's own event, arriving here again,
// is recognized as an echo and dropped instead of triggering another move.
func (e *Engine) SetCursorFromCell(row, col int, g Grid) (Cell, bool) {
	if e.syncing {
		return Cell{}, false
	}
	size := e.src.Size()
	if size == 0 {
		return Cell{}, false
	}

	e.cursor = clamp64(e.CellToOffset(row, col, g), 0, size-1)
	e.syncing = true
	return e.OffsetToCell(e.cursor, g.Other())
}

// FinishSync clears the echo guard once the mirrored highlight is in place.
func (e *Engine) FinishSync() { e.syncing = false }

// Syncing reports whether a programmatic cursor move is still being applied.
func (e *Engine) Syncing() bool { return e.syncing }

// Rows derives the visible rows from the byte source through the current
// layout. A source read failure is a hard error.
func (e *Engine) Rows() ([]Row, error) {
	size := e.src.Size()
	depth := int64(e.layout.RowDepth)
	rows := make([]Row, 0, e.visibleRows)

	for i := 0; i < e.visibleRows; i++ {
		off := e.top + int64(i)*depth
		if off >= size {
			break
		}
		chunk, err := e.src.Bytes(off, e.layout.RowDepth)
		if err != nil {
			return nil, errors.Wrapf(err, "reading row at %#x", off)
		}
		hexCells, asciiCells := FormatRow(chunk, e.layout.GroupWidth, e.littleEndian)
		rows = append(rows, Row{Offset: off, Hex: hexCells, ASCII: asciiCells})
	}

	return rows, nil
}

func clamp64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
