package figure

import (
	"image/color"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
	"github.com/benoitkugler/okplot/theme"
)

// canvas is the drawing context of one Axes: directives
// express their geometry in data space, mapped to the device
// through tr.
type canvas struct {
	sc  *scene.Scene
	th  theme.Theme
	box plotpath.Rect // device rectangle of the axes
	tr  plotpath.Matrix2D
}

// xy maps a data point to the device
func (c *canvas) xy(x, y float64) (float64, float64) { return c.tr.Transform(x, y) }

// rect returns the device rectangle of the data rectangle [x0, x1] x [y0, y1]
func (c *canvas) rect(x0, y0, x1, y1 float64) plotpath.Rect {
	ax, ay := c.xy(x0, y0)
	bx, by := c.xy(x1, y1)
	return plotpath.EmptyRect.AddPoint(ax, ay).AddPoint(bx, by)
}

func (c *canvas) shape(p plotpath.Path, st scene.Style) {
	if len(p) == 0 {
		return
	}
	c.sc.Add(scene.Shape{Path: p, Style: st})
}

func (c *canvas) fill(p plotpath.Path, col color.Color, alpha float64) {
	c.shape(p, scene.Style{Fill: col, Opacity: alpha})
}

func (c *canvas) stroke(p plotpath.Path, col color.Color, width float64, dash []float64, alpha float64) {
	c.shape(p, scene.Style{
		Stroke:    col,
		LineWidth: width,
		Opacity:   alpha,
		Dash:      scene.DashOptions{Dash: dash},
	})
}

func (c *canvas) fillStroke(p plotpath.Path, face, edge color.Color, width, alpha float64) {
	c.shape(p, scene.Style{Fill: face, Stroke: edge, LineWidth: width, Opacity: alpha})
}

func (c *canvas) text(t scene.Text) {
	if t.Color == nil {
		t.Color = c.th.ForegroundColor()
	}
	if t.Size == 0 {
		t.Size = c.th.Px(c.th.FontSize)
	}
	c.sc.Add(t)
}

// markers draws m at each device point. Line markers are stroked
// with the face color, the others are filled and outlined with edge.
func (c *canvas) markers(m plotpath.Marker, pts [][2]float64, size float64, face, edge color.Color, alpha float64) {
	if m == plotpath.NoMarker || len(pts) == 0 {
		return
	}
	var p plotpath.Path
	for _, pt := range pts {
		p.AddMarker(m, pt[0], pt[1], size)
	}
	edgeWidth := c.th.Px(1)
	if m.IsLine() {
		c.stroke(p, face, c.th.Px(c.th.LineWidth), nil, alpha)
		return
	}
	if edge == nil {
		edge = face
	}
	c.fillStroke(p, face, edge, edgeWidth, alpha)
}

// devicePoints maps the data points (xs[i], ys[i]) to the device,
// skipping the non finite ones
func (c *canvas) devicePoints(xs, ys []float64) [][2]float64 {
	out := make([][2]float64, 0, len(xs))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		x, y := c.xy(xs[i], ys[i])
		out = append(out, [2]float64{x, y})
	}
	return out
}

// polylines maps the data points to the device, breaking
// the line at each non finite point.
func (c *canvas) polylines(xs, ys []float64) plotpath.Path {
	var (
		p      plotpath.Path
		coords []float64
	)
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			p.AddPolyline(coords...)
			coords = coords[:0]
			continue
		}
		x, y := c.xy(xs[i], ys[i])
		coords = append(coords, x, y)
	}
	p.AddPolyline(coords...)
	return p
}
