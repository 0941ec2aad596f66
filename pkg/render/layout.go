package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/primitives"
)

// Kind classifies a laid-out box.
type Kind int

const (
	KindBlock Kind = iota
	KindText
	KindButton
	KindInput
	KindSeparator
	KindPanel
)

// pixelsPerCell converts panel offsets to cells; the default offset rounds
// down to zero.
const pixelsPerCell = 8

// inputWidth is the minimum width of a text field, brackets included.
const inputWidth = 18

// Box is one laid-out node.
type Box struct {
	Node *dom.Node
	Kind Kind
	Rect disclosure.Rect
	// Text is the content painted for text, button and input boxes.
	Text string
	// Overlay marks panels and their content.
	Overlay bool
}

// Layout is the result of laying out a document in terminal cells. Boxes
// are in paint order: the document flow first, then each open panel.
type Layout struct {
	Width, Height int
	Boxes         []Box
	index         map[*dom.Node]int
}

// BoxOf returns the box laid out for n.
func (l *Layout) BoxOf(n *dom.Node) (Box, bool) {
	i, ok := l.index[n]
	if !ok {
		return Box{}, false
	}
	return l.Boxes[i], true
}

// Compute lays out the subtree under root. Elements stack vertically
// unless they carry data-layout=row; menus are taken out of the flow and
// placed against their trigger with [disclosure.Place].
func Compute(root *dom.Node) *Layout {
	lay := &layouter{
		out:  &Layout{index: make(map[*dom.Node]int)},
		root: root,
		size: make(map[*dom.Node]disclosure.Size),
	}
	s := lay.measure(root)
	lay.arrange(root, disclosure.Rect{W: s.W, H: s.H})
	for len(lay.panels) > 0 {
		panel := lay.panels[0]
		lay.panels = lay.panels[1:]
		lay.placePanel(panel)
	}
	return lay.out
}

type layouter struct {
	out     *Layout
	root    *dom.Node
	size    map[*dom.Node]disclosure.Size
	panels  []*dom.Node
	overlay bool
}

func isPanel(n *dom.Node) bool { return n.GetAttr("role") == "menu" }
func isItem(n *dom.Node) bool  { return n.GetAttr("data-slot") == disclosure.EntrySlot }

func isInline(n *dom.Node) bool {
	return n.IsText() || n.Tag == "span" || n.Tag == "mark"
}

func isRow(n *dom.Node) bool {
	return n.GetAttr("data-layout") == primitives.LayoutRow || isItem(n)
}

func textOf(n *dom.Node) string {
	return strings.Join(strings.Fields(n.TextContent()), " ")
}

func buttonLabel(n *dom.Node) string {
	label := textOf(n)
	if n.GetAttr("aria-haspopup") == "menu" {
		label += " ▾"
	}
	return "[" + label + "]"
}

func inputContent(n *dom.Node) string {
	if v := n.GetAttr("value"); v != "" {
		return v
	}
	return n.GetAttr("placeholder")
}

func padded(n *dom.Node) bool {
	return isItem(n) || n.GetAttr("data-slot") == "menu-label"
}

// stretches reports whether n fills the width of a column.
func stretches(n *dom.Node) bool {
	return !isInline(n) && n.Tag != "button" && n.Tag != "input"
}

func allInline(n *dom.Node) bool {
	children := n.Children()
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if !isInline(c) {
			return false
		}
	}
	return true
}

func (l *layouter) measure(n *dom.Node) disclosure.Size {
	if s, ok := l.size[n]; ok {
		return s
	}
	s := l.measureUncached(n)
	l.size[n] = s
	return s
}

func (l *layouter) measureUncached(n *dom.Node) disclosure.Size {
	switch {
	case n.IsText():
		text := strings.Join(strings.Fields(n.Text), " ")
		if text == "" {
			return disclosure.Size{}
		}
		return disclosure.Size{W: utf8.RuneCountInString(text), H: 1}
	case isPanel(n) && n != l.root:
		return disclosure.Size{}
	case n.Tag == "button":
		return disclosure.Size{W: utf8.RuneCountInString(buttonLabel(n)), H: 1}
	case n.Tag == "input":
		return disclosure.Size{W: max(inputWidth, utf8.RuneCountInString(inputContent(n))+2), H: 1}
	case n.GetAttr("role") == "separator":
		return disclosure.Size{W: 1, H: 1}
	}

	var s disclosure.Size
	inline := !isItem(n) && (allInline(n) || n.Tag == "span" || n.Tag == "mark")
	row := inline || isRow(n)
	count := 0
	for _, c := range n.Children() {
		cs := l.measure(c)
		if cs.W == 0 && cs.H == 0 {
			continue
		}
		if row {
			if count > 0 && !inline {
				s.W++
			}
			s.W += cs.W
			s.H = max(s.H, cs.H)
		} else {
			s.W = max(s.W, cs.W)
			s.H += cs.H
		}
		count++
	}
	if padded(n) && s.H > 0 {
		s.W += 2
	}
	return s
}

func (l *layouter) record(b Box) {
	b.Overlay = l.overlay
	l.out.index[b.Node] = len(l.out.Boxes)
	l.out.Boxes = append(l.out.Boxes, b)
	l.out.Width = max(l.out.Width, b.Rect.X+b.Rect.W)
	l.out.Height = max(l.out.Height, b.Rect.Y+b.Rect.H)
}

func (l *layouter) arrange(n *dom.Node, r disclosure.Rect) {
	switch {
	case n.IsText():
		if text := strings.Join(strings.Fields(n.Text), " "); text != "" {
			l.record(Box{Node: n, Kind: KindText, Rect: r, Text: text})
		}
		return
	case isPanel(n):
		l.panels = append(l.panels, n)
		return
	case n.Tag == "button":
		l.record(Box{Node: n, Kind: KindButton, Rect: r, Text: buttonLabel(n)})
		return
	case n.Tag == "input":
		l.record(Box{Node: n, Kind: KindInput, Rect: r, Text: inputContent(n)})
		return
	case n.GetAttr("role") == "separator":
		l.record(Box{Node: n, Kind: KindSeparator, Rect: r})
		return
	}

	l.record(Box{Node: n, Kind: KindBlock, Rect: r})
	inner := r
	if padded(n) {
		inner.X++
		inner.W = max(0, inner.W-2)
	}
	inline := !isItem(n) && (allInline(n) || n.Tag == "span" || n.Tag == "mark")
	row := inline || isRow(n)
	x, y := inner.X, inner.Y
	count := 0
	for _, c := range n.Children() {
		cs := l.measure(c)
		if cs.W == 0 && cs.H == 0 {
			if isPanel(c) {
				l.arrange(c, disclosure.Rect{})
			}
			continue
		}
		if row {
			if count > 0 && !inline {
				x++
			}
			l.arrange(c, disclosure.Rect{X: x, Y: y, W: cs.W, H: cs.H})
			x += cs.W
		} else {
			w := cs.W
			if stretches(c) {
				w = max(w, inner.W)
			}
			l.arrange(c, disclosure.Rect{X: x, Y: y, W: w, H: cs.H})
			y += cs.H
		}
		count++
	}
}

// placePanel positions an open panel against the trigger named by its
// aria-labelledby attribute.
func (l *layouter) placePanel(panel *dom.Node) {
	anchorID := panel.GetAttr("aria-labelledby")
	anchor := dom.Query(l.root, func(n *dom.Node) bool { return anchorID != "" && n.GetAttr("id") == anchorID })
	anchorBox, ok := l.out.BoxOf(anchor)
	if !ok {
		return
	}

	var content disclosure.Size
	for _, c := range panel.Children() {
		cs := l.measure(c)
		content.W = max(content.W, cs.W)
		content.H += cs.H
	}
	size := disclosure.Size{W: content.W + 2, H: content.H + 2}
	placement := disclosure.Resolve(disclosure.Side(panel.GetAttr("data-side")), disclosure.Align(panel.GetAttr("data-align")), offsetOf(panel)/pixelsPerCell)
	r := disclosure.Place(anchorBox.Rect, size, placement)
	r.X = max(0, r.X)
	r.Y = max(0, r.Y)

	prev := l.overlay
	l.overlay = true
	defer func() { l.overlay = prev }()

	l.record(Box{Node: panel, Kind: KindPanel, Rect: r})
	y := r.Y + 1
	for _, c := range panel.Children() {
		cs := l.measure(c)
		if cs.H == 0 {
			continue
		}
		w := cs.W
		if stretches(c) {
			w = content.W
		}
		l.arrange(c, disclosure.Rect{X: r.X + 1, Y: y, W: w, H: cs.H})
		y += cs.H
	}
}

// offsetOf parses the pixel offset from a panel's margin style.
func offsetOf(panel *dom.Node) int {
	style := panel.GetAttr("style")
	_, value, ok := strings.Cut(style, ":")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(value, "px"))
	if err != nil {
		return 0
	}
	return n
}
