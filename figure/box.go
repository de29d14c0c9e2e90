package figure

import (
	"image/color"
	"math"
	"strconv"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	boxWidth = 0.5
	// half width of the notch, relative to the median confidence interval
	notchFactor = 1.57
)

// BoxOptions customizes a box plot.
type BoxOptions struct {
	Notch      bool     // draw the median confidence interval
	Filled     bool     // fill the boxes with Color
	Horizontal bool     // boxes along the x axis
	Color      string   // face color of filled boxes, default to the color cycle
	Labels     []string // one per sample, default to 1, 2, ...
}

// BoxStats is the summary drawn for one sample.
type BoxStats struct {
	Median, Quartile1, Quartile3 float64
	// whisker ends: the most extreme values within 1.5 IQR of the box
	AdjLow, AdjHigh float64
	// median confidence interval
	NotchLow, NotchHigh float64
	Outliers            []float64
}

// BoxPlot draws one box per sample, at positions 1, 2, ...
type BoxPlot struct {
	stats  []BoxStats
	labels []string
	face   color.Color
	opts   BoxOptions
}

func boxStats(sample []float64) (BoxStats, error) {
	b, err := plotter.NewBoxPlot(vg.Length(0), 0, plotter.Values(sample))
	if err != nil {
		return BoxStats{}, err
	}
	out := BoxStats{
		Median:    b.Median,
		Quartile1: b.Quartile1,
		Quartile3: b.Quartile3,
		AdjLow:    b.AdjLow,
		AdjHigh:   b.AdjHigh,
	}
	ci := notchFactor * (b.Quartile3 - b.Quartile1) / math.Sqrt(float64(len(sample)))
	out.NotchLow, out.NotchHigh = b.Median-ci, b.Median+ci
	for _, i := range b.Outside {
		out.Outliers = append(out.Outliers, sample[i])
	}
	return out, nil
}

// BoxPlot adds a box and whisker plot of each sample.
func (ax *Axes) BoxPlot(samples [][]float64, opts BoxOptions) (*BoxPlot, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyData
	}
	if len(opts.Labels) != 0 && len(opts.Labels) != len(samples) {
		return nil, errors.Wrap(lengthMismatch(len(opts.Labels), len(samples)), "box labels")
	}
	bp := &BoxPlot{opts: opts}
	for i, s := range samples {
		if len(s) == 0 {
			return nil, errors.Wrapf(ErrEmptyData, "sample %d", i)
		}
		st, err := boxStats(s)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		bp.stats = append(bp.stats, st)
		label := strconv.Itoa(i + 1)
		if len(opts.Labels) != 0 {
			label = opts.Labels[i]
		}
		bp.labels = append(bp.labels, label)
	}
	if opts.Filled {
		if opts.Color == "" {
			bp.face = ax.nextColor()
		} else {
			c, err := parseColor(opts.Color)
			if err != nil {
				return nil, err
			}
			bp.face = c
		}
	}
	ax.add(bp)
	return bp, nil
}

func (*BoxPlot) Kind() Kind { return KindBox }

func (*BoxPlot) Label() string { return "" }

// Stats returns the summary of each sample.
func (bp *BoxPlot) Stats() []BoxStats { return append([]BoxStats(nil), bp.stats...) }

// at maps a (position, value) pair to data coordinates
func (bp *BoxPlot) at(pos, value float64) (x, y float64) {
	if bp.opts.Horizontal {
		return value, pos
	}
	return pos, value
}

func (bp *BoxPlot) limits() limits {
	values := emptyRange
	for _, st := range bp.stats {
		values = values.add(st.AdjLow, st.AdjHigh).add(st.Outliers...)
		if bp.opts.Notch {
			values = values.add(st.NotchLow, st.NotchHigh)
		}
	}
	positions := Range{0.5, float64(len(bp.stats)) + 0.5}
	if bp.opts.Horizontal {
		return limits{x: values, y: positions, stickyY0: true, stickyY1: true}
	}
	return limits{x: positions, y: values, stickyX0: true, stickyX1: true}
}

// outline returns the device polygon of the box i, as x0, y0, x1, y1, ...
func (bp *BoxPlot) outline(c *canvas, i int) []float64 {
	st := bp.stats[i]
	pos := float64(i + 1)
	h := boxWidth / 2
	var pts [][2]float64 // in (position, value)
	if bp.opts.Notch {
		pts = [][2]float64{
			{pos - h, st.Quartile1}, {pos + h, st.Quartile1},
			{pos + h, st.NotchLow}, {pos + h/2, st.Median}, {pos + h, st.NotchHigh},
			{pos + h, st.Quartile3}, {pos - h, st.Quartile3},
			{pos - h, st.NotchHigh}, {pos - h/2, st.Median}, {pos - h, st.NotchLow},
		}
	} else {
		pts = [][2]float64{
			{pos - h, st.Quartile1}, {pos + h, st.Quartile1},
			{pos + h, st.Quartile3}, {pos - h, st.Quartile3},
		}
	}
	out := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		x, y := c.xy(bp.at(pt[0], pt[1]))
		out = append(out, x, y)
	}
	return out
}

// segment returns the device path of the data segment
// from (pos0, v0) to (pos1, v1)
func (bp *BoxPlot) segment(c *canvas, p *plotpath.Path, pos0, v0, pos1, v1 float64) {
	x0, y0 := c.xy(bp.at(pos0, v0))
	x1, y1 := c.xy(bp.at(pos1, v1))
	p.AddPolyline(x0, y0, x1, y1)
}

func (bp *BoxPlot) draw(c *canvas) {
	fg := c.th.ForegroundColor()
	width := c.th.Px(1)
	median := c.th.CycleColor(1)
	for i, st := range bp.stats {
		pos := float64(i + 1)

		var whiskers plotpath.Path
		bp.segment(c, &whiskers, pos, st.Quartile1, pos, st.AdjLow)
		bp.segment(c, &whiskers, pos, st.Quartile3, pos, st.AdjHigh)
		capHalf := boxWidth / 4
		bp.segment(c, &whiskers, pos-capHalf, st.AdjLow, pos+capHalf, st.AdjLow)
		bp.segment(c, &whiskers, pos-capHalf, st.AdjHigh, pos+capHalf, st.AdjHigh)
		c.stroke(whiskers, fg, width, nil, 0)

		var box plotpath.Path
		box.AddPolygon(bp.outline(c, i)...)
		c.fillStroke(box, bp.face, fg, width, 0)

		medianHalf := boxWidth / 2
		if bp.opts.Notch {
			medianHalf = boxWidth / 4
		}
		var med plotpath.Path
		bp.segment(c, &med, pos-medianHalf, st.Median, pos+medianHalf, st.Median)
		c.stroke(med, median, width, nil, 0)

		if len(st.Outliers) != 0 {
			pts := make([][2]float64, len(st.Outliers))
			for j, v := range st.Outliers {
				pts[j][0], pts[j][1] = c.xy(bp.at(pos, v))
			}
			var fliers plotpath.Path
			for _, pt := range pts {
				fliers.AddMarker(plotpath.Circle, pt[0], pt[1], c.th.Px(c.th.MarkerSize))
			}
			c.stroke(fliers, fg, width, nil, 0)
		}
	}
}

func (bp *BoxPlot) swatch(c *canvas, r plotpath.Rect) {
	var p plotpath.Path
	p.AddRect(r.X0, r.Y0, r.X1, r.Y1)
	c.fillStroke(p, bp.face, c.th.ForegroundColor(), c.th.Px(1), 0)
}

func (bp *BoxPlot) footprint(c *canvas) ([][2]float64, []plotpath.Rect) {
	var (
		points [][2]float64
		rects  []plotpath.Rect
	)
	for i, st := range bp.stats {
		pos := float64(i + 1)
		x0, y0 := bp.at(pos-boxWidth/2, st.AdjLow)
		x1, y1 := bp.at(pos+boxWidth/2, st.AdjHigh)
		rects = append(rects, c.rect(x0, y0, x1, y1))
		for _, v := range st.Outliers {
			var pt [2]float64
			pt[0], pt[1] = c.xy(bp.at(pos, v))
			points = append(points, pt)
		}
	}
	return points, rects
}

func (bp *BoxPlot) positionTicks() []plot.Tick {
	out := make([]plot.Tick, len(bp.labels))
	for i, l := range bp.labels {
		out[i] = plot.Tick{Value: float64(i + 1), Label: l}
	}
	return out
}

func (bp *BoxPlot) xTicks() []plot.Tick {
	if bp.opts.Horizontal {
		return nil
	}
	return bp.positionTicks()
}

func (bp *BoxPlot) yTicks() []plot.Tick {
	if bp.opts.Horizontal {
		return bp.positionTicks()
	}
	return nil
}
