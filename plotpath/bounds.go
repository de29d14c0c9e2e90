package plotpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// compute the exact extent of a path, control points of curves excluded

// Rect is an axis aligned rectangle, in device coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// EmptyRect is the neutral element of Union.
var EmptyRect = Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty returns true if the rectangle contains no point.
func (r Rect) IsEmpty() bool { return r.X0 > r.X1 || r.Y0 > r.Y1 }

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{math.Min(r.X0, o.X0), math.Min(r.Y0, o.Y0), math.Max(r.X1, o.X1), math.Max(r.Y1, o.Y1)}
}

// AddPoint grows r to include (x, y).
func (r Rect) AddPoint(x, y float64) Rect {
	return r.Union(Rect{x, y, x, y})
}

// Contains returns true if (x, y) is inside r, borders included.
func (r Rect) Contains(x, y float64) bool {
	return r.X0 <= x && x <= r.X1 && r.Y0 <= y && y <= r.Y1
}

// Overlaps returns true if the intersection of r and o is not empty.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Inset returns r shrinked by the given margins.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{r.X0 + left, r.Y0 + top, r.X1 - right, r.Y1 - bottom}
}

// Bounds returns the extent of the path. The result is empty
// for an empty path.
func (p Path) Bounds() Rect {
	out := EmptyRect
	var current fixed.Point26_6
	for _, op := range p {
		var curve bezier
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			x, y := FromFixedP(current)
			out = out.AddPoint(x, y)
			continue
		case LineTo:
			curve = line{current, fixed.Point26_6(op)}
			current = fixed.Point26_6(op)
		case QuadTo:
			curve = quadBezier{current, op[0], op[1]}
			current = op[1]
		case CubicTo:
			curve = cubicBezier{current, op[0], op[1], op[2]}
			current = op[2]
		default:
			continue
		}
		out = out.Union(computeBoundingBox(curve))
	}
	return out
}

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixedP(l[0])
	p1x, p1y := FromFixedP(l[1])
	return bezierLine(p0x, p1x, t), bezierLine(p0y, p1y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]fixed.Point26_6

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := FromFixedP(cu[0])
	p1x, p1y := FromFixedP(cu[1])
	p2x, p2y := FromFixedP(cu[2])

	aX, bX := quadraticDerivative(p0x, p1x, p2x)
	aY, bY := quadraticDerivative(p0y, p1y, p2y)

	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixedP(cu[0])
	p1x, p1y := FromFixedP(cu[1])
	p2x, p2y := FromFixedP(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicBezier [4]fixed.Point26_6

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p1x, p1y := FromFixedP(cu[0])
	c1x, c1y := FromFixedP(cu[1])
	c2x, c2y := FromFixedP(cu[2])
	p2x, p2y := FromFixedP(cu[3])

	aX, bX, cX := cubicDerivative(p1x, c1x, c2x, p2x)
	aY, bY, cY := cubicDerivative(p1y, c1y, c2y, p2y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixedP(cu[0])
	p1x, p1y := FromFixedP(cu[1])
	p2x, p2y := FromFixedP(cu[2])
	p3x, p3y := FromFixedP(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

func computeBoundingBox(curve bezier) Rect {
	resX, resY := curve.criticalPoints()
	out := EmptyRect
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		out = out.AddPoint(curve.evaluateCurve(t))
	}
	return out
}
