package disclosure

import "fmt"

// Side is the trigger edge a panel is anchored to.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Align places a panel on the axis perpendicular to its side.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// ParseSide returns the side named s.
func ParseSide(s string) (Side, error) {
	switch side := Side(s); side {
	case SideTop, SideBottom, SideLeft, SideRight:
		return side, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// ParseAlign returns the alignment named s.
func ParseAlign(s string) (Align, error) {
	switch align := Align(s); align {
	case AlignStart, AlignCenter, AlignEnd:
		return align, nil
	}
	return "", fmt.Errorf("unknown align %q", s)
}

// Margins holds the panel margins. Resolve sets exactly one of them.
type Margins struct {
	Top, Right, Bottom, Left int
}

// Placement describes where a panel sits relative to its trigger.
type Placement struct {
	// AnchorEdge is the trigger edge the panel is attached to.
	AnchorEdge Side
	// CrossAxis aligns the panel along that edge.
	CrossAxis Align
	// Margin carries the offset on the panel side facing the trigger.
	Margin Margins
}

// Resolve maps a side, alignment and offset to a placement. Unknown sides
// resolve to bottom and unknown alignments to start.
func Resolve(side Side, align Align, offset int) Placement {
	if _, err := ParseSide(string(side)); err != nil {
		side = SideBottom
	}
	if _, err := ParseAlign(string(align)); err != nil {
		align = AlignStart
	}
	p := Placement{AnchorEdge: side, CrossAxis: align}
	switch side {
	case SideTop:
		p.Margin.Bottom = offset
	case SideBottom:
		p.Margin.Top = offset
	case SideLeft:
		p.Margin.Right = offset
	case SideRight:
		p.Margin.Left = offset
	}
	return p
}

// Style renders the margin as an inline style declaration.
func (p Placement) Style() string {
	switch p.AnchorEdge {
	case SideTop:
		return fmt.Sprintf("margin-bottom:%dpx", p.Margin.Bottom)
	case SideLeft:
		return fmt.Sprintf("margin-right:%dpx", p.Margin.Right)
	case SideRight:
		return fmt.Sprintf("margin-left:%dpx", p.Margin.Left)
	default:
		return fmt.Sprintf("margin-top:%dpx", p.Margin.Top)
	}
}

// Rect is an axis-aligned rectangle in host units (cells or pixels).
type Rect struct {
	X, Y, W, H int
}

// Size is a width and height in host units.
type Size struct {
	W, H int
}

// Place positions a panel of the given size against anchor. It does not
// avoid viewport edges.
func Place(anchor Rect, size Size, p Placement) Rect {
	out := Rect{W: size.W, H: size.H}
	switch p.AnchorEdge {
	case SideTop:
		out.Y = anchor.Y - size.H - p.Margin.Bottom
		out.X = alignOn(anchor.X, anchor.W, size.W, p.CrossAxis)
	case SideLeft:
		out.X = anchor.X - size.W - p.Margin.Right
		out.Y = alignOn(anchor.Y, anchor.H, size.H, p.CrossAxis)
	case SideRight:
		out.X = anchor.X + anchor.W + p.Margin.Left
		out.Y = alignOn(anchor.Y, anchor.H, size.H, p.CrossAxis)
	default:
		out.Y = anchor.Y + anchor.H + p.Margin.Top
		out.X = alignOn(anchor.X, anchor.W, size.W, p.CrossAxis)
	}
	return out
}

func alignOn(start, anchorLen, panelLen int, align Align) int {
	switch align {
	case AlignCenter:
		return start + (anchorLen-panelLen)/2
	case AlignEnd:
		return start + anchorLen - panelLen
	default:
		return start
	}
}
