// Implements a PDF backend to render scenes,
// by wrapping github.com/jung-kurt/gofpdf.
package plotpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/okplot/scene"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

const fontFamily = "goregular"

// assert interface conformance
var (
	_ scene.Driver  = Renderer{}
	_ scene.Filler  = (*filler)(nil)
	_ scene.Stroker = (*stroker)(nil)
	_ scene.Stroker = (*patherStroker)(nil)
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
	willStroke        bool // the path is kept for the stroker
}

// implements the stroking operation, while
// also writing the path
type patherStroker struct {
	pather
}

// only stroke the current path, established by
// the filler
type stroker struct {
	patherStroker
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// NewDocument returns a one page document of the scene size,
// in points, with the text font registered.
func NewDocument(sc *scene.Scene) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: sc.Width, Ht: sc.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(fontFamily, "", scene.FontBytes())
	pdf.AddPage()
	return pdf
}

// Encode renders the scene in a new PDF document, written to out.
func Encode(out io.Writer, sc *scene.Scene) error {
	pdf := NewDocument(sc)
	sc.Draw(NewRenderer(pdf))
	return pdf.Output(out)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, willStroke: willStroke}
		if willStroke { // dont write the same path twice
			s = &stroker{patherStroker: patherStroker{pather: pather{pdf: r.pdf}}}
		}
	} else if willStroke { // write the path
		s = &patherStroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func rgb(c color.Color) (r, g, b int, alpha float64) {
	n := scene.ToNRGBA(c)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(a*opacity, "Normal")
}

// Draw only fills when a stroke is expected, since the
// stroker will paint both at once
func (f *filler) Draw() {
	if f.willStroke {
		return
	}
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *patherStroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.pdf.SetDrawColor(r, g, b)
	f.pdf.SetAlpha(a*opacity, "Normal")
}

func (f *patherStroker) SetStrokeOptions(options scene.StrokeOptions) {
	capStyle, joinStyle := "butt", "miter"
	switch options.Join.TrailLineCap {
	case scene.RoundCap, scene.CubicCap, scene.QuadraticCap:
		capStyle = "round"
	case scene.SquareCap:
		capStyle = "square"
	}
	switch options.Join.LineJoin {
	case scene.Bevel:
		joinStyle = "bevel"
	case scene.Round, scene.Arc, scene.ArcClip:
		joinStyle = "round"
	}
	f.pdf.SetLineCapStyle(capStyle)
	f.pdf.SetLineJoinStyle(joinStyle)
	f.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	f.pdf.SetDashPattern(options.Dash.Dash, options.Dash.DashOffset)
}

func (f *patherStroker) Draw() {
	f.pdf.DrawPath("D")
}

// the path has already been written by the filler
func (s *stroker) Start(a fixed.Point26_6)            {}
func (s *stroker) Line(b fixed.Point26_6)             {}
func (s *stroker) QuadBezier(b, c fixed.Point26_6)    {}
func (s *stroker) CubeBezier(b, c, d fixed.Point26_6) {}
func (s *stroker) Stop(closeLoop bool)                {}

// Draw fills and strokes the path written by the filler.
// The fill alpha is overwritten by the stroke one.
func (s *stroker) Draw() {
	s.pdf.DrawPath("FD")
}

// DrawText writes the text with the embedded font.
func (r Renderer) DrawText(t scene.Text) {
	red, g, b, a := rgb(t.Color)
	if t.Color == nil {
		a = 1
	}
	r.pdf.SetFont(fontFamily, "", t.Size)
	r.pdf.SetTextColor(red, g, b)
	r.pdf.SetAlpha(a, "Normal")
	dx, dy := t.Offset()
	if t.Vertical {
		r.pdf.TransformBegin()
		r.pdf.TransformRotate(90, t.X, t.Y)
		r.pdf.Text(t.X+dx, t.Y+dy, t.Content)
		r.pdf.TransformEnd()
		return
	}
	r.pdf.Text(t.X+dx, t.Y+dy, t.Content)
}
