package plotpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent.
// All coordinates are device coordinates, with the y axis pointing down.

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating a circular arc.
const maxDx float64 = math.Pi / 8

// ToFixedP converts two floats to a fixed point.
func ToFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(x * 64))
	p.Y = fixed.Int26_6(math.Round(y * 64))
	return
}

// FromFixedP converts a fixed point to two floats.
func FromFixedP(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}

// AddRect adds a closed axis aligned rectangle.
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.MoveTof(minX, minY)
	p.LineTof(maxX, minY)
	p.LineTof(maxX, maxY)
	p.LineTof(minX, maxY)
	p.Stop(true)
}

// AddPolyline adds an open polyline through the given points,
// given as x0, y0, x1, y1, ...
func (p *Path) AddPolyline(points ...float64) {
	if len(points) < 4 {
		return
	}
	p.MoveTof(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		p.LineTof(points[i], points[i+1])
	}
}

// AddPolygon is like AddPolyline, but closes the path.
func (p *Path) AddPolygon(points ...float64) {
	if len(points) < 4 {
		return
	}
	p.AddPolyline(points...)
	p.Stop(true)
}

// arcTo approximates, starting from the current point, the arc of the
// circle (cx, cy, r) going from theta1 to theta2 (radians, counter-clockwise
// as seen on screen), with cubic bezier curves.
// Approximate the arc using a set of cubic bezier curves by the method of
// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
// or cubic Bezier curves", 2003
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func (p *Path) arcTo(cx, cy, rx, ry, theta1, theta2 float64) {
	pointAt := func(eta float64) (float64, float64) {
		return cx + rx*math.Cos(eta), cy - ry*math.Sin(eta)
	}
	prime := func(eta float64) (float64, float64) {
		return -rx * math.Sin(eta), -ry * math.Cos(eta)
	}

	deltaEta := theta2 - theta1
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!

	lx, ly := pointAt(theta1)
	ldx, ldy := prime(theta1)
	for i := 1; i <= segs; i++ {
		eta := theta1 + dEta*float64(i)
		px, py := pointAt(eta)
		dx, dy := prime(eta)
		p.CubeBezier(ToFixedP(lx+alpha*ldx, ly+alpha*ldy),
			ToFixedP(px-alpha*dx, py-alpha*dy), ToFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// AddEllipse adds a closed ellipse centered on (cx, cy).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.MoveTof(cx+rx, cy)
	p.arcTo(cx, cy, rx, ry, 0, 2*math.Pi)
	p.Stop(true)
}

// AddCircle adds a closed circle centered on (cx, cy).
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddWedge adds a closed circular sector, going counter-clockwise
// from theta1 to theta2 (in radians).
func (p *Path) AddWedge(cx, cy, r, theta1, theta2 float64) {
	p.MoveTof(cx, cy)
	p.LineTof(cx+r*math.Cos(theta1), cy-r*math.Sin(theta1))
	p.arcTo(cx, cy, r, r, theta1, theta2)
	p.Stop(true)
}
