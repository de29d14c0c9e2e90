// Implements a raster backend to render scenes,
// by wrapping rasterx.
package plotraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/okplot/scene"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ scene.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dst    draw.Image
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

type filler struct{ *rasterx.Filler }

type stroker struct{ *rasterx.Dasher }

// NewRenderer returns a renderer painting on dst.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
func NewRenderer(dst draw.Image, scanner rasterx.Scanner) *Renderer {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	}
	return &Renderer{dst: dst, dasher: rasterx.NewDasher(w, h, scanner), filler: rasterx.NewFiller(w, h, scanner)}
}

// RasterScene uses a ScannerGV instance to render the
// scene into an image and returns it
func RasterScene(sc *scene.Scene) *image.RGBA {
	w, h := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sc.Draw(NewRenderer(img, nil))
	return img
}

// Encode rasterizes the scene and writes it as PNG.
func Encode(out io.Writer, sc *scene.Scene) error {
	return png.Encode(out, RasterScene(sc))
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		scene.Round:     rasterx.Round,
		scene.Bevel:     rasterx.Bevel,
		scene.Miter:     rasterx.Miter,
		scene.MiterClip: rasterx.MiterClip,
		scene.Arc:       rasterx.Arc,
		scene.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		scene.NilCap:       rasterx.ButtCap,
		scene.ButtCap:      rasterx.ButtCap,
		scene.SquareCap:    rasterx.SquareCap,
		scene.RoundCap:     rasterx.RoundCap,
		scene.CubicCap:     rasterx.CubicCap,
		scene.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		scene.NilGap:       rasterx.RoundGap,
		scene.FlatGap:      rasterx.FlatGap,
		scene.RoundGap:     rasterx.RoundGap,
		scene.CubicGap:     rasterx.CubicGap,
		scene.QuadraticGap: rasterx.QuadraticGap,
	}
)

func (s stroker) SetStrokeOptions(options scene.StrokeOptions) {
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LeadLineCap],
		capToFunc[options.Join.TrailLineCap], gapToFunc[options.Join.LineGap],
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}

// DrawText draws the text with the shared font face. Vertical texts are
// first drawn in a mask, which is then rotated.
func (rd *Renderer) DrawText(t scene.Text) {
	face := scene.Face(t.Size)
	ascent, descent := scene.FontMetrics(t.Size)
	w := int(math.Ceil(scene.MeasureText(t.Content, t.Size))) + 1
	h := int(math.Ceil(ascent + descent))

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.Int26_6(ascent * 64)},
	}
	d.DrawString(t.Content)

	// top left corner of the mask, relative to the anchor
	dx, dy := t.Offset()
	left, top := dx, dy-ascent

	var (
		m      image.Image = mask
		origin image.Point
	)
	if t.Vertical {
		m = rotateCCW(mask)
		// (u, v) -> (v, -u) maps the horizontal box to the rotated one
		origin = image.Pt(int(math.Round(t.X+top)), int(math.Round(t.Y-(left+float64(w)))))
	} else {
		origin = image.Pt(int(math.Round(t.X+left)), int(math.Round(t.Y+top)))
	}
	var col image.Image = image.Black
	if t.Color != nil {
		col = image.NewUniform(t.Color)
	}
	r := m.Bounds().Add(origin)
	draw.DrawMask(rd.dst, r, col, image.Point{}, m, m.Bounds().Min, draw.Over)
}

// rotateCCW rotates the mask by 90 degrees, counter-clockwise.
func rotateCCW(src *image.Alpha) *image.Alpha {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewAlpha(image.Rect(0, 0, h, w))
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out.SetAlpha(j, w-1-i, src.AlphaAt(b.Min.X+i, b.Min.Y+j))
		}
	}
	return out
}
