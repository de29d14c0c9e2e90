package figure

import (
	"github.com/benoitkugler/okplot/plotpath"
	"gonum.org/v1/plot"
)

const barWidth = 0.8

// Bars is a categorical bar chart: the i-th bar is centered on x = i.
type Bars struct {
	categories []string
	values     []float64
	style      resolved
}

// Bar adds one bar per category, in the given order.
func (ax *Axes) Bar(categories []string, values []float64, st Style) (*Bars, error) {
	if len(categories) != len(values) {
		return nil, lengthMismatch(len(categories), len(values))
	}
	if len(values) == 0 {
		return nil, ErrEmptyData
	}
	style, err := ax.resolve(st, "")
	if err != nil {
		return nil, err
	}
	b := &Bars{
		categories: append([]string(nil), categories...),
		values:     append([]float64(nil), values...),
		style:      style,
	}
	ax.add(b)
	return b, nil
}

func (*Bars) Kind() Kind { return KindBar }

func (b *Bars) Label() string { return b.style.label }

// Categories returns the categories, in drawing order.
func (b *Bars) Categories() []string { return append([]string(nil), b.categories...) }

// Values returns the bar heights, in drawing order.
func (b *Bars) Values() []float64 { return append([]float64(nil), b.values...) }

func (b *Bars) limits() limits {
	y := emptyRange.add(0).add(b.values...)
	return limits{
		x:        Range{-barWidth / 2, float64(len(b.values)-1) + barWidth/2},
		y:        y,
		stickyY0: y.Min == 0,
		stickyY1: y.Max == 0,
	}
}

// rects returns the device rectangle of each bar,
// skipping the non finite values
func (b *Bars) rects(c *canvas) []plotpath.Rect {
	out := make([]plotpath.Rect, 0, len(b.values))
	for i, v := range b.values {
		if !isFinite(v) {
			continue
		}
		x := float64(i)
		out = append(out, c.rect(x-barWidth/2, 0, x+barWidth/2, v))
	}
	return out
}

func (b *Bars) draw(c *canvas) {
	for _, r := range b.rects(c) {
		var p plotpath.Path
		p.AddRect(r.X0, r.Y0, r.X1, r.Y1)
		c.fillStroke(p, b.style.color, b.style.edge, c.th.Px(1), b.style.alpha)
	}
}

func (b *Bars) swatch(c *canvas, r plotpath.Rect) {
	var p plotpath.Path
	p.AddRect(r.X0, r.Y0, r.X1, r.Y1)
	c.fillStroke(p, b.style.color, b.style.edge, c.th.Px(1), b.style.alpha)
}

func (b *Bars) footprint(c *canvas) ([][2]float64, []plotpath.Rect) {
	return nil, b.rects(c)
}

func (b *Bars) xTicks() []plot.Tick {
	out := make([]plot.Tick, len(b.categories))
	for i, cat := range b.categories {
		out[i] = plot.Tick{Value: float64(i), Label: cat}
	}
	return out
}

func (b *Bars) yTicks() []plot.Tick { return nil }
