// Implements an SVG backend to render scenes,
// by wrapping github.com/ajstarks/svgo.
package plotsvg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
	"golang.org/x/image/math/fixed"
)

var _ scene.Driver = (*Renderer)(nil)

// Renderer accumulates the path sent by the scene,
// and writes one <path> element per shape.
type Renderer struct {
	canvas *svg.SVG

	path   plotpath.Path
	fill   string
	stroke string
	rule   string
}

type pather struct{ r *Renderer }

type filler struct{ pather }

type stroker struct {
	pather
	opts     scene.StrokeOptions
	replayed bool // the path was already recorded by the filler
}

// NewRenderer returns a renderer writing on the started canvas.
func NewRenderer(canvas *svg.SVG) *Renderer {
	return &Renderer{canvas: canvas}
}

// Encode writes the scene as a standalone SVG document.
func Encode(out io.Writer, sc *scene.Scene) error {
	ew := &errWriter{w: out}
	canvas := svg.New(ew)
	canvas.Start(int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height)))
	sc.Draw(NewRenderer(canvas))
	canvas.End()
	return ew.err
}

// svgo ignores write errors
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (r *Renderer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	r.path.Clear()
	r.fill, r.stroke, r.rule = "fill:none", "", ""
	if willFill {
		f = filler{pather{r}}
	}
	if willStroke {
		r.stroke = "pending" // delays the filler output
		s = &stroker{pather: pather{r}, replayed: willFill}
	}
	return f, s
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6)            { p.r.path.Start(a) }
func (p pather) Line(b fixed.Point26_6)             { p.r.path.Line(b) }
func (p pather) QuadBezier(b, c fixed.Point26_6)    { p.r.path.QuadBezier(b, c) }
func (p pather) CubeBezier(b, c, d fixed.Point26_6) { p.r.path.CubeBezier(b, c, d) }
func (p pather) Stop(closeLoop bool)                { p.r.path.Stop(closeLoop) }

func colorAttr(name string, c color.Color, opacity float64) string {
	n := scene.ToNRGBA(c)
	out := fmt.Sprintf("%s:#%02x%02x%02x", name, n.R, n.G, n.B)
	if a := float64(n.A) / 255 * opacity; a < 1 {
		out += fmt.Sprintf(";%s-opacity:%.3g", name, a)
	}
	return out
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.r.fill = colorAttr("fill", c, opacity)
}

func (f filler) SetWinding(useNonZeroWinding bool) {
	if !useNonZeroWinding {
		f.r.rule = "fill-rule:evenodd"
	}
}

// Draw is delayed to the stroker when one is expected.
func (f filler) Draw() {
	if f.r.stroke == "" {
		f.r.flush()
	}
}

func (s *stroker) Start(a fixed.Point26_6) {
	if !s.replayed {
		s.pather.Start(a)
	}
}

func (s *stroker) Line(b fixed.Point26_6) {
	if !s.replayed {
		s.pather.Line(b)
	}
}

func (s *stroker) QuadBezier(b, c fixed.Point26_6) {
	if !s.replayed {
		s.pather.QuadBezier(b, c)
	}
}

func (s *stroker) CubeBezier(b, c, d fixed.Point26_6) {
	if !s.replayed {
		s.pather.CubeBezier(b, c, d)
	}
}

func (s *stroker) Stop(closeLoop bool) {
	if !s.replayed {
		s.pather.Stop(closeLoop)
	}
}

func (s *stroker) SetStrokeOptions(options scene.StrokeOptions) {
	s.opts = options
}

var (
	capNames  = map[scene.CapMode]string{scene.RoundCap: "round", scene.SquareCap: "square"}
	joinNames = map[scene.JoinMode]string{scene.Round: "round", scene.Bevel: "bevel", scene.Arc: "round", scene.ArcClip: "round"}
)

func (s *stroker) SetColor(c color.Color, opacity float64) {
	chunks := []string{
		colorAttr("stroke", c, opacity),
		fmt.Sprintf("stroke-width:%.3g", float64(s.opts.LineWidth)/64),
	}
	if name, ok := capNames[s.opts.Join.TrailLineCap]; ok {
		chunks = append(chunks, "stroke-linecap:"+name)
	}
	if name, ok := joinNames[s.opts.Join.LineJoin]; ok {
		chunks = append(chunks, "stroke-linejoin:"+name)
	}
	if len(s.opts.Dash.Dash) != 0 {
		dashes := make([]string, len(s.opts.Dash.Dash))
		for i, d := range s.opts.Dash.Dash {
			dashes[i] = fmt.Sprintf("%.3g", d)
		}
		chunks = append(chunks, "stroke-dasharray:"+strings.Join(dashes, ","))
	}
	s.r.stroke = strings.Join(chunks, ";")
}

func (s *stroker) Draw() { s.r.flush() }

func (r *Renderer) flush() {
	if len(r.path) == 0 {
		return
	}
	style := []string{r.fill}
	if r.rule != "" {
		style = append(style, r.rule)
	}
	if r.stroke != "" {
		style = append(style, r.stroke)
	}
	r.canvas.Path(r.path.ToSVGPath(), strings.Join(style, ";"))
	r.path.Clear()
}

var anchors = [...]string{scene.Left: "start", scene.Center: "middle", scene.Right: "end"}

// DrawText writes a <text> element. The baseline offset is resolved
// with the shared font metrics, so that the alignment
// matches the other backends.
func (r *Renderer) DrawText(t scene.Text) {
	_, dy := t.Offset()
	style := fmt.Sprintf("font-family:Go,sans-serif;font-size:%.3gpx;text-anchor:%s;%s",
		t.Size, anchors[t.HAlign], colorAttr("fill", t.Color, 1))
	if t.Color == nil {
		style = fmt.Sprintf("font-family:Go,sans-serif;font-size:%.3gpx;text-anchor:%s", t.Size, anchors[t.HAlign])
	}
	r.canvas.Gtransform(fmt.Sprintf("translate(%.2f,%.2f)", t.X, t.Y))
	if t.Vertical {
		r.canvas.Gtransform("rotate(-90)")
	}
	r.canvas.Text(0, int(math.Round(dy)), t.Content, style)
	if t.Vertical {
		r.canvas.Gend()
	}
	r.canvas.Gend()
}
