package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/campusui/campus/pkg/disclosure"
)

// Diagram draws where a panel lands for one side, alignment and offset.
// Zero sizes take defaults: a 320x220 canvas with a 96x28 trigger in the
// middle and a 128x72 panel.
type Diagram struct {
	Side   disclosure.Side
	Align  disclosure.Align
	Offset int

	Canvas disclosure.Size
	Anchor disclosure.Rect
	Panel  disclosure.Size
}

func (d Diagram) withDefaults() Diagram {
	if d.Canvas.W <= 0 || d.Canvas.H <= 0 {
		d.Canvas = disclosure.Size{W: 320, H: 220}
	}
	if d.Anchor.W <= 0 || d.Anchor.H <= 0 {
		d.Anchor = disclosure.Rect{W: 96, H: 28}
		d.Anchor.X = (d.Canvas.W - d.Anchor.W) / 2
		d.Anchor.Y = (d.Canvas.H - d.Anchor.H) / 2
	}
	if d.Panel.W <= 0 || d.Panel.H <= 0 {
		d.Panel = disclosure.Size{W: 128, H: 72}
	}
	return d
}

// PanelRect returns the panel rectangle the diagram draws.
func (d Diagram) PanelRect() disclosure.Rect {
	d = d.withDefaults()
	return disclosure.Place(d.Anchor, d.Panel, disclosure.Resolve(d.Side, d.Align, d.Offset))
}

// Image draws the diagram.
func (d Diagram) Image() *image.RGBA {
	d = d.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, d.Canvas.W, d.Canvas.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(ColorCanvas), image.Point{}, draw.Src)

	panel := d.PanelRect()
	fillRect(img, panel, ColorPanel)
	strokeRect(img, panel, ColorOutline)
	fillRect(img, d.Anchor, ColorAnchor)

	p := disclosure.Resolve(d.Side, d.Align, d.Offset)
	label(img, d.Anchor, "trigger", ColorOnFill)
	label(img, panel, fmt.Sprintf("%s/%s", p.AnchorEdge, p.CrossAxis), ColorInk)
	return img
}

// WritePNG encodes the diagram as PNG.
func (d Diagram) WritePNG(w io.Writer) error {
	return png.Encode(w, d.Image())
}

func rectangle(r disclosure.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func fillRect(img draw.Image, r disclosure.Rect, c Color) {
	draw.Draw(img, rectangle(r), image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(img draw.Image, r disclosure.Rect, c Color) {
	fillRect(img, disclosure.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	fillRect(img, disclosure.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	fillRect(img, disclosure.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	fillRect(img, disclosure.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// label centers text in r using the built-in 7x13 face.
func label(img draw.Image, r disclosure.Rect, text string, c Color) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	width := drawer.MeasureString(text).Round()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Round()
	x := r.X + (r.W-width)/2
	y := r.Y + (r.H-height)/2 + metrics.Ascent.Round()
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)
}
