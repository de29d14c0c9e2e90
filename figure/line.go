package figure

import (
	"github.com/benoitkugler/okplot/plotpath"
)

// xy is the data shared by lines and scatters
type xy struct {
	x, y  []float64
	style resolved
}

func newXY(x, y []float64) (xy, error) {
	if err := checkXY(x, y); err != nil {
		return xy{}, err
	}
	return xy{x: append([]float64(nil), x...), y: append([]float64(nil), y...)}, nil
}

func (d xy) Label() string { return d.style.label }

func (d xy) limits() limits {
	return limits{x: emptyRange.add(d.x...), y: emptyRange.add(d.y...)}
}

func (d xy) footprint(c *canvas) ([][2]float64, []plotpath.Rect) {
	return c.devicePoints(d.x, d.y), nil
}

func (d xy) drawMarkers(c *canvas, pts [][2]float64) {
	c.markers(d.style.marker, pts, d.style.size, d.style.color, d.style.edge, d.style.alpha)
}

// Line is a polyline through the data points, with optional markers.
type Line struct {
	xy
}

// Plot adds a line through the points (x[i], y[i]).
func (ax *Axes) Plot(x, y []float64, st Style) (*Line, error) {
	data, err := newXY(x, y)
	if err != nil {
		return nil, err
	}
	if data.style, err = ax.resolve(st, ""); err != nil {
		return nil, err
	}
	l := &Line{xy: data}
	ax.add(l)
	return l, nil
}

func (*Line) Kind() Kind { return KindLine }

// Points returns a copy of the data.
func (l *Line) Points() (x, y []float64) {
	return append([]float64(nil), l.x...), append([]float64(nil), l.y...)
}

func (l *Line) draw(c *canvas) {
	if !l.style.line.none {
		p := c.polylines(l.x, l.y)
		c.stroke(p, l.style.color, l.style.lineWidth, l.style.line.dashes(l.style.lineWidth), l.style.alpha)
	}
	l.drawMarkers(c, c.devicePoints(l.x, l.y))
}

func (l *Line) swatch(c *canvas, r plotpath.Rect) {
	y := (r.Y0 + r.Y1) / 2
	if !l.style.line.none {
		var p plotpath.Path
		p.AddPolyline(r.X0, y, r.X1, y)
		c.stroke(p, l.style.color, l.style.lineWidth, l.style.line.dashes(l.style.lineWidth), l.style.alpha)
	}
	l.drawMarkers(c, [][2]float64{{(r.X0 + r.X1) / 2, y}})
}

// Scatter is a set of unconnected markers.
type Scatter struct {
	xy
}

// Scatter adds a marker at each point (x[i], y[i]).
// The marker defaults to "o".
func (ax *Axes) Scatter(x, y []float64, st Style) (*Scatter, error) {
	data, err := newXY(x, y)
	if err != nil {
		return nil, err
	}
	if data.style, err = ax.resolve(st, "o"); err != nil {
		return nil, err
	}
	s := &Scatter{xy: data}
	ax.add(s)
	return s, nil
}

func (*Scatter) Kind() Kind { return KindScatter }

func (s *Scatter) draw(c *canvas) { s.drawMarkers(c, c.devicePoints(s.x, s.y)) }

func (s *Scatter) swatch(c *canvas, r plotpath.Rect) {
	s.drawMarkers(c, [][2]float64{{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}})
}
