package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single terminal cell: a rune and its foreground color.
// A wide rune (CJK glyphs) occupies its own cell plus a continuation
// cell to the right, which has Rune == 0 and is skipped on output.
type Cell struct {
	Rune  rune
	Color Color
}

// continuation reports whether the cell is the right half of a wide rune.
func (c Cell) continuation() bool {
	return c.Rune == 0
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// runes and strings while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; every frame
// is redrawn from game state anyway.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a narrow rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color. Wide runes take two cells and are
// dropped entirely when the second cell would fall off the right edge.
func (s *Screen) SetColored(x, y int, r rune, c Color) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if !s.inBounds(x, y) || !s.inBounds(x+w-1, y) {
		return w
	}
	s.clobber(x, y)
	s.cells[y][x] = Cell{Rune: r, Color: c}
	if w == 2 {
		s.clobber(x+1, y)
		s.cells[y][x+1] = Cell{Rune: 0, Color: c}
	}
	return w
}

// clobber blanks the other half of a wide rune about to be overwritten at (x, y).
func (s *Screen) clobber(x, y int) {
	cur := s.cells[y][x]
	if cur.continuation() && x > 0 {
		s.cells[y][x-1] = blankCell
	}
	if !cur.continuation() && runewidth.RuneWidth(cur.Rune) == 2 && x+1 < s.width {
		s.cells[y][x+1] = blankCell
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates and continuation cells.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, blank when out of bounds.
// Continuation cells are reported as blanks carrying their color.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	c := s.cells[y][x]
	if c.continuation() {
		return Cell{Rune: ' ', Color: c.Color}
	}
	return c
}

// IsContinuation reports whether (x, y) is the right half of a wide rune.
func (s *Screen) IsContinuation(x, y int) bool {
	return s.inBounds(x, y) && s.cells[y][x].continuation()
}

// DrawText writes a string horizontally starting at (x, y) in the default color.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string starting at (x, y), advancing by
// each rune's display width. Characters beyond the screen are clipped.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		x += s.SetColored(x, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string, continuation cells omitted.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if !c.continuation() {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// TextWidth returns the number of cells text occupies on a terminal.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}
