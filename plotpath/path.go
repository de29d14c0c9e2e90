// Implements an abstract representation of
// vector paths, which can then be consumed
// by painting drivers.
package plotpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder is implemented by types that can accumulate path commands,
// such as a Path or a rasterizer.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)
	// Closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

// Operation groups the different path commands
type Operation interface {
	// add itself on `d`, after applying the transform `M`
	addTo(d Adder, M Matrix2D)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (op MoveTo) addTo(d Adder, M Matrix2D) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(M.TFixed(fixed.Point26_6(op)))
}

func (op LineTo) addTo(d Adder, M Matrix2D) {
	d.Line(M.TFixed(fixed.Point26_6(op)))
}

func (op QuadTo) addTo(d Adder, M Matrix2D) {
	d.QuadBezier(M.TFixed(op[0]), M.TFixed(op[1]))
}

func (op CubicTo) addTo(d Adder, M Matrix2D) {
	d.CubeBezier(M.TFixed(op[0]), M.TFixed(op[1]), M.TFixed(op[2]))
}

func (op Close) addTo(d Adder, _ Matrix2D) {
	d.Stop(true)
}

// Path describes a sequence of basic drawing operations.
// Higher-level shapes may be reduced to a path.
type Path []Operation

func fixedToF(v fixed.Int26_6) float32 { return float32(v) / 64 }

// ToSVGPath returns a string representation of the path,
// suitable for the `d` attribute of an SVG path element.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", fixedToF(op.X), fixedToF(op.Y))
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", fixedToF(op.X), fixedToF(op.Y))
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", fixedToF(op[0].X), fixedToF(op[0].Y),
				fixedToF(op[1].X), fixedToF(op[1].Y))
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", fixedToF(op[0].X), fixedToF(op[0].Y),
				fixedToF(op[1].X), fixedToF(op[1].Y), fixedToF(op[2].X), fixedToF(op[2].Y))
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// MoveTof starts a new curve at (x, y).
func (p *Path) MoveTof(x, y float64) { p.Start(ToFixedP(x, y)) }

// LineTof adds a line to (x, y).
func (p *Path) LineTof(x, y float64) { p.Line(ToFixedP(x, y)) }

// AddTo replays the path on q, after applying the transform M.
func (p Path) AddTo(q Adder, M Matrix2D) {
	for _, op := range p {
		op.addTo(q, M)
	}
	q.Stop(false)
}

// Transformed returns a new path, with M applied to every point.
func (p Path) Transformed(M Matrix2D) Path {
	out := make(Path, 0, len(p))
	p.AddTo(&out, M)
	return out
}

// Points returns the end points of every segment, in order.
// Control points of bezier curves are omitted.
func (p Path) Points() []fixed.Point26_6 {
	var out []fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out = append(out, fixed.Point26_6(op))
		case LineTo:
			out = append(out, fixed.Point26_6(op))
		case QuadTo:
			out = append(out, op[1])
		case CubicTo:
			out = append(out, op[2])
		}
	}
	return out
}
