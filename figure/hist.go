package figure

import (
	"github.com/benoitkugler/okplot/plotpath"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
)

// Histogram shows the distribution of a sample, as adjacent bars.
type Histogram struct {
	bins  []plotter.HistogramBin
	style resolved
}

// Hist bins values into `bins` equal width intervals spanning the sample.
// A non positive `bins` selects the square root of the sample size.
func (ax *Axes) Hist(values []float64, bins int, st Style) (*Histogram, error) {
	if len(values) == 0 {
		return nil, ErrEmptyData
	}
	style, err := ax.resolve(st, "")
	if err != nil {
		return nil, err
	}
	// NewHist does not check its input
	vs, err := plotter.CopyValues(plotter.Values(values))
	if err != nil {
		return nil, errors.Wrap(err, "histogram values")
	}
	h, err := plotter.NewHist(vs, bins)
	if err != nil {
		return nil, errors.Wrap(err, "binning histogram")
	}
	out := &Histogram{bins: h.Bins, style: style}
	ax.add(out)
	return out, nil
}

func (*Histogram) Kind() Kind { return KindHistogram }

func (h *Histogram) Label() string { return h.style.label }

// Counts returns the weight of each bin.
func (h *Histogram) Counts() []float64 {
	out := make([]float64, len(h.bins))
	for i, b := range h.bins {
		out[i] = b.Weight
	}
	return out
}

// Edges returns the len(Counts())+1 bin boundaries.
func (h *Histogram) Edges() []float64 {
	out := make([]float64, 0, len(h.bins)+1)
	for _, b := range h.bins {
		out = append(out, b.Min)
	}
	return append(out, h.bins[len(h.bins)-1].Max)
}

func (h *Histogram) limits() limits {
	y := emptyRange.add(0)
	for _, b := range h.bins {
		y = y.add(b.Weight)
	}
	return limits{
		x:        Range{h.bins[0].Min, h.bins[len(h.bins)-1].Max},
		y:        y,
		stickyY0: true,
	}
}

func (h *Histogram) rects(c *canvas) []plotpath.Rect {
	out := make([]plotpath.Rect, len(h.bins))
	for i, b := range h.bins {
		out[i] = c.rect(b.Min, 0, b.Max, b.Weight)
	}
	return out
}

func (h *Histogram) draw(c *canvas) {
	for _, r := range h.rects(c) {
		if r.Height() == 0 {
			continue
		}
		var p plotpath.Path
		p.AddRect(r.X0, r.Y0, r.X1, r.Y1)
		c.fillStroke(p, h.style.color, h.style.edge, c.th.Px(1), h.style.alpha)
	}
}

func (h *Histogram) swatch(c *canvas, r plotpath.Rect) {
	var p plotpath.Path
	p.AddRect(r.X0, r.Y0, r.X1, r.Y1)
	c.fillStroke(p, h.style.color, h.style.edge, c.th.Px(1), h.style.alpha)
}

func (h *Histogram) footprint(c *canvas) ([][2]float64, []plotpath.Rect) {
	return nil, h.rects(c)
}
