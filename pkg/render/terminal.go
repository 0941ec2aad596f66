package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/dom"
)

// Attr is a set of cell text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrReverse
	AttrUnderline
)

// Style returns the lipgloss style drawing a.
func (a Attr) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(a&AttrBold != 0).
		Faint(a&AttrFaint != 0).
		Reverse(a&AttrReverse != 0).
		Underline(a&AttrUnderline != 0)
}

type cell struct {
	r    rune
	attr Attr
}

// Screen is a painted grid of terminal cells.
type Screen struct {
	Width, Height int
	cells         [][]cell
	hits          HitMap
}

// HitMap maps cells back to the nodes painted there.
type HitMap struct {
	entries []hitEntry
}

type hitEntry struct {
	rect disclosure.Rect
	node *dom.Node
}

func (h *HitMap) add(r disclosure.Rect, n *dom.Node) {
	if r.W > 0 && r.H > 0 {
		h.entries = append(h.entries, hitEntry{r, n})
	}
}

// At returns the topmost element painted at (x, y), or nil. Dispatching a
// press to it bubbles to the interactive ancestor as a pointer would.
func (h *HitMap) At(x, y int) *dom.Node {
	for i := len(h.entries) - 1; i >= 0; i-- {
		r := h.entries[i].rect
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return h.entries[i].node
		}
	}
	return nil
}

// Terminal paints a layout. Panels are drawn over the flow with a rounded
// border; the focused entry and the focused control are shown reversed.
func Terminal(l *Layout) *Screen {
	s := &Screen{Width: l.Width, Height: l.Height}
	s.cells = make([][]cell, l.Height)
	for y := range s.cells {
		s.cells[y] = make([]cell, l.Width)
		for x := range s.cells[y] {
			s.cells[y][x] = cell{r: ' '}
		}
	}
	for _, b := range l.Boxes {
		s.paint(b)
	}
	return s
}

// AttrAt returns the attributes of the cell at (x, y).
func (s *Screen) AttrAt(x, y int) Attr {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return 0
	}
	return s.cells[y][x].attr
}

// Hits returns the hit map for the painted boxes.
func (s *Screen) Hits() *HitMap { return &s.hits }

func (s *Screen) set(x, y int, r rune, attr Attr) {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return
	}
	s.cells[y][x] = cell{r, attr}
}

func (s *Screen) text(x, y, width int, text string, attr Attr) {
	i := 0
	for _, r := range text {
		if width >= 0 && i >= width {
			return
		}
		s.set(x+i, y, r, attr)
		i++
	}
}

func (s *Screen) fill(r disclosure.Rect, attr Attr) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.set(x, y, ' ', attr)
		}
	}
}

func (s *Screen) paint(b Box) {
	r := b.Rect
	switch b.Kind {
	case KindText:
		s.text(r.X, r.Y, r.W, b.Text, textAttr(b.Node))
		return
	case KindButton:
		var attr Attr
		if b.Node.IsFocused() {
			attr |= AttrReverse
		}
		if b.Node.Disabled() {
			attr |= AttrFaint
		}
		if b.Node.GetAttr("aria-expanded") == "true" {
			attr |= AttrBold
		}
		s.text(r.X, r.Y, r.W, b.Text, attr)
	case KindInput:
		var attr Attr
		if b.Node.IsFocused() {
			attr |= AttrUnderline
		}
		if b.Node.GetAttr("value") == "" {
			attr |= AttrFaint
		}
		s.set(r.X, r.Y, '[', 0)
		s.fill(disclosure.Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, attr)
		s.text(r.X+1, r.Y, r.W-2, b.Text, attr)
		s.set(r.X+r.W-1, r.Y, ']', 0)
	case KindSeparator:
		s.text(r.X, r.Y, r.W, strings.Repeat("─", r.W), AttrFaint)
	case KindPanel:
		s.fill(r, 0)
		s.border(r, lipgloss.RoundedBorder())
	case KindBlock:
		if !isItem(b.Node) {
			break
		}
		var attr Attr
		if b.Node.IsFocused() {
			attr = AttrReverse
			s.fill(r, attr)
		}
		if b.Node.GetAttr("aria-checked") == "true" {
			s.set(r.X, r.Y, '•', attr)
		}
	}
	s.hits.add(r, b.Node)
}

func (s *Screen) border(r disclosure.Rect, border lipgloss.Border) {
	first := func(str string) rune {
		for _, c := range str {
			return c
		}
		return ' '
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		s.set(x, r.Y, first(border.Top), AttrFaint)
		s.set(x, bottom, first(border.Bottom), AttrFaint)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.set(r.X, y, first(border.Left), AttrFaint)
		s.set(right, y, first(border.Right), AttrFaint)
	}
	s.set(r.X, r.Y, first(border.TopLeft), AttrFaint)
	s.set(right, r.Y, first(border.TopRight), AttrFaint)
	s.set(r.X, bottom, first(border.BottomLeft), AttrFaint)
	s.set(right, bottom, first(border.BottomRight), AttrFaint)
}

// textAttr derives the attributes of a text run from its enclosing
// elements.
func textAttr(n *dom.Node) Attr {
	var attr Attr
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch {
		case p.Tag == "mark":
			attr |= AttrUnderline
		case p.GetAttr("data-slot") == "menu-label":
			attr |= AttrBold
		case p.GetAttr("data-slot") == "menu-shortcut":
			attr |= AttrFaint
		case isItem(p):
			if p.IsFocused() {
				attr |= AttrReverse
			}
			if p.Disabled() {
				attr |= AttrFaint
			}
		}
		if isPanel(p) {
			break
		}
	}
	return attr
}

// String renders the screen with lipgloss styles.
func (s *Screen) String() string {
	var sb strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row = trimRow(row)
		for start := 0; start < len(row); {
			end := start
			var run []rune
			for end < len(row) && row[end].attr == row[start].attr {
				run = append(run, row[end].r)
				end++
			}
			if row[start].attr == 0 {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(row[start].attr.Style().Render(string(run)))
			}
			start = end
		}
	}
	return sb.String()
}

// Plain renders the screen without styling, with trailing blanks removed.
func (s *Screen) Plain() string {
	lines := make([]string, len(s.cells))
	for y, row := range s.cells {
		var sb strings.Builder
		for _, c := range trimRow(row) {
			sb.WriteRune(c.r)
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func trimRow(row []cell) []cell {
	end := len(row)
	for end > 0 && row[end-1].r == ' ' && row[end-1].attr == 0 {
		end--
	}
	return row[:end]
}
