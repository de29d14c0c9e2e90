// Implements a device independent list of painting
// operations, which can then be consumed by drivers,
// such as a rasterizer to output .png images or a pdf writer.
package scene

import (
	"image/color"

	"github.com/benoitkugler/okplot/plotpath"
	"golang.org/x/image/math/fixed"
)

// Style holds the painting state of a shape.
type Style struct {
	Fill, Stroke      color.Color // nil disables filling (stroking)
	Opacity           float64     // applied to both fill and stroke; zero means opaque
	LineWidth         float64
	UseNonZeroWinding bool

	Join JoinOptions
	Dash DashOptions
}

// DefaultStroke is the join and cap setup used when a Style
// leaves them to zero.
var DefaultStroke = JoinOptions{
	MiterLimit:   fixed.I(4),
	LineJoin:     Round,
	TrailLineCap: ButtCap,
	LineGap:      RoundGap,
}

// Item is one painting operation.
type Item interface {
	draw(d Driver)
}

// Shape binds a style to a path.
type Shape struct {
	Path  plotpath.Path
	Style Style
}

// HAlign is the horizontal alignment of a text, relative to its anchor.
type HAlign uint8

const (
	Left HAlign = iota
	Center
	Right
)

// VAlign is the vertical alignment of a text, relative to its anchor.
type VAlign uint8

const (
	Baseline VAlign = iota
	Top
	Middle
	Bottom
)

// Text is a single line of text anchored at (X, Y).
// When Vertical is true, the text is laid out as if horizontal
// and then rotated by 90 degrees counter-clockwise around the anchor.
type Text struct {
	X, Y     float64
	Content  string
	Size     float64 // in device units
	Color    color.Color
	HAlign   HAlign
	VAlign   VAlign
	Vertical bool
}

// Scene is an ordered list of items, drawn on a Width x Height surface.
type Scene struct {
	Width, Height float64
	Background    color.Color // nil for transparent
	Items         []Item
}

// New returns an empty scene.
func New(width, height float64, background color.Color) *Scene {
	return &Scene{Width: width, Height: height, Background: background}
}

// Add appends items, drawn after the already added ones.
func (s *Scene) Add(items ...Item) {
	s.Items = append(s.Items, items...)
}

// Draw paints the scene into the driver `d`, background first.
func (s *Scene) Draw(d Driver) {
	if s.Background != nil {
		var bg plotpath.Path
		bg.AddRect(0, 0, s.Width, s.Height)
		Shape{Path: bg, Style: Style{Fill: s.Background}}.draw(d)
	}
	for _, it := range s.Items {
		it.draw(d)
	}
}

func (t Text) draw(d Driver) {
	if t.Content == "" {
		return
	}
	d.DrawText(t)
}

// Offset returns the position of the start of the baseline, relative
// to the anchor, before the optional rotation.
func (t Text) Offset() (dx, dy float64) {
	w := MeasureText(t.Content, t.Size)
	switch t.HAlign {
	case Center:
		dx = -w / 2
	case Right:
		dx = -w
	}
	ascent, descent := FontMetrics(t.Size)
	switch t.VAlign {
	case Top:
		dy = ascent
	case Middle:
		dy = (ascent - descent) / 2
	case Bottom:
		dy = -descent
	}
	return dx, dy
}

func (sh Shape) draw(d Driver) {
	opacity := sh.Style.Opacity
	if opacity == 0 {
		opacity = 1
	}
	filler, stroker := d.SetupDrawers(sh.Style.Fill != nil, sh.Style.Stroke != nil && sh.Style.LineWidth > 0)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(sh.Style.UseNonZeroWinding)

		sh.Path.AddTo(filler, plotpath.Identity)

		filler.SetColor(sh.Style.Fill, opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()

		join := sh.Style.Join
		if join.LineGap == NilGap {
			join.LineGap = DefaultStroke.LineGap
		}
		if join.TrailLineCap == NilCap {
			join.TrailLineCap = DefaultStroke.TrailLineCap
		}
		if join.LeadLineCap == NilCap {
			join.LeadLineCap = join.TrailLineCap
		}
		if join.MiterLimit == 0 {
			join.MiterLimit = DefaultStroke.MiterLimit
			join.LineJoin = DefaultStroke.LineJoin
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(sh.Style.LineWidth * 64),
			Join:      join,
			Dash:      sh.Style.Dash,
		})

		sh.Path.AddTo(stroker, plotpath.Identity)

		stroker.SetColor(sh.Style.Stroke, opacity)
		stroker.Draw()
	}
}
