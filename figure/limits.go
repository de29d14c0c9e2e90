package figure

import (
	"math"
	"sort"
	"strconv"

	"github.com/benoitkugler/okplot/plotpath"
	"gonum.org/v1/plot"
)

// margin added on each non sticky side of the data range
const autoMargin = 0.05

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

var emptyRange = Range{math.Inf(1), math.Inf(-1)}

func (r Range) isEmpty() bool { return r.Min > r.Max }

func (r Range) Len() float64 { return r.Max - r.Min }

func (r Range) union(o Range) Range {
	return Range{math.Min(r.Min, o.Min), math.Max(r.Max, o.Max)}
}

// add extends r to the finite values of vs
func (r Range) add(vs ...float64) Range {
	for _, v := range vs {
		if !isFinite(v) {
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}

// isValid is true for non empty ranges with finite bounds
func (r Range) isValid() bool {
	return isFinite(r.Min) && isFinite(r.Max) && isFinite(r.Len()) && r.Len() > 0
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (r Range) contains(v float64) bool {
	// tolerance for ticks rounding
	eps := 1e-9 * math.Max(1, math.Abs(r.Len()))
	return r.Min-eps <= v && v <= r.Max+eps
}

// limits is the data extent of a directive
type limits struct {
	x, y Range

	// sides which should not receive a margin,
	// such as the base of bars
	stickyX0, stickyX1, stickyY0, stickyY1 bool

	noMargin bool
	// equal aspect: one data unit has the
	// same length on both axes
	equalAspect bool
	invertY     bool
	frameless   bool
}

// merge combines the limits of all the directives
func merge(ls []limits) limits {
	out := limits{x: emptyRange, y: emptyRange}
	for _, l := range ls {
		out.x = out.x.union(l.x)
		out.y = out.y.union(l.y)
		out.noMargin = out.noMargin || l.noMargin
		out.equalAspect = out.equalAspect || l.equalAspect
		out.invertY = out.invertY || l.invertY
		out.frameless = out.frameless || l.frameless
	}
	for _, l := range ls {
		out.stickyX0 = out.stickyX0 || (l.stickyX0 && l.x.Min == out.x.Min)
		out.stickyX1 = out.stickyX1 || (l.stickyX1 && l.x.Max == out.x.Max)
		out.stickyY0 = out.stickyY0 || (l.stickyY0 && l.y.Min == out.y.Min)
		out.stickyY1 = out.stickyY1 || (l.stickyY1 && l.y.Max == out.y.Max)
	}
	if out.x.isEmpty() {
		out.x = Range{0, 1}
	}
	if out.y.isEmpty() {
		out.y = Range{0, 1}
	}
	return out
}

func expand(r Range, sticky0, sticky1 bool) Range {
	if r.Len() == 0 {
		// degenerated range, such as a single point
		d := math.Max(math.Abs(r.Min)*autoMargin, 0.5)
		return Range{r.Min - d, r.Max + d}
	}
	m := r.Len() * autoMargin
	if !sticky0 {
		r.Min -= m
	}
	if !sticky1 {
		r.Max += m
	}
	return r
}

// viewRanges returns the visible ranges, margins included
func (l limits) viewRanges() (x, y Range) {
	x, y = l.x, l.y
	if !l.noMargin {
		x = expand(x, l.stickyX0, l.stickyX1)
		y = expand(y, l.stickyY0, l.stickyY1)
	}
	return x, y
}

// dataTransform maps the data ranges onto the device rectangle box.
func dataTransform(box plotpath.Rect, x, y Range, invertY bool) plotpath.Matrix2D {
	if invertY {
		return plotpath.Identity.Translate(box.X0, box.Y0).
			Scale(box.Width()/x.Len(), box.Height()/y.Len()).
			Translate(-x.Min, -y.Min)
	}
	return plotpath.Identity.Translate(box.X0, box.Y1).
		Scale(box.Width()/x.Len(), -box.Height()/y.Len()).
		Translate(-x.Min, -y.Min)
}

// minTicks is the number of labels below which
// the minor ticks are labeled too
const minTicks = 4

// defaultTicks returns the labeled ticks inside r,
// or nil if r is not a valid range
func defaultTicks(r Range) []plot.Tick {
	if !r.isValid() {
		return nil
	}
	var major, all []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(r.Min, r.Max) {
		if !r.contains(t.Value) {
			continue
		}
		all = append(all, t)
		if t.Label != "" {
			major = append(major, t)
		}
	}
	out := major
	if len(major) < minTicks && len(all) <= 2*minTicks {
		out = all
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	labelTicks(out)
	return out
}

// labelTicks formats the tick values with the fewest
// decimals writing them exactly: integers are written
// without fractional part.
func labelTicks(ticks []plot.Tick) {
	prec := 0
	for _, t := range ticks {
		for ; prec < 6; prec++ {
			scaled := t.Value * math.Pow10(prec)
			if math.Abs(scaled-math.Round(scaled)) <= 1e-6*math.Max(1, math.Abs(scaled)) {
				break
			}
		}
	}
	for i, t := range ticks {
		v := t.Value
		if math.Abs(v) < 0.5*math.Pow10(-prec) {
			v = 0 // no "-0"
		}
		if math.Abs(v) >= 1e7 {
			ticks[i].Label = strconv.FormatFloat(v, 'g', 4, 64)
			continue
		}
		ticks[i].Label = strconv.FormatFloat(v, 'f', prec, 64)
	}
}
