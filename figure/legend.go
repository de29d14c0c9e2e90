package figure

import (
	"math"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
)

// LegendLocation is a candidate position of the legend box.
type LegendLocation uint8

// Candidates, in tie breaking order.
const (
	UpperRight LegendLocation = iota
	UpperLeft
	LowerLeft
	LowerRight
	CenterLeft
	CenterRight
	LowerCenter
	UpperCenter
	Center
)

func (l LegendLocation) String() string {
	switch l {
	case UpperRight:
		return "upper right"
	case UpperLeft:
		return "upper left"
	case LowerLeft:
		return "lower left"
	case LowerRight:
		return "lower right"
	case CenterLeft:
		return "center left"
	case CenterRight:
		return "center right"
	case LowerCenter:
		return "lower center"
	case UpperCenter:
		return "upper center"
	case Center:
		return "center"
	default:
		return "<unknown LegendLocation>"
	}
}

// legend sizes, relative to the font size
const (
	legendHandleLength = 2.0
	legendLabelSpacing = 0.5
	legendBorderPad    = 0.4
	legendTextPad      = 0.8
	legendAxesPad      = 0.5
)

type legendLayout struct {
	fontSize      float64
	width, height float64
	rowHeight     float64
	entries       []Directive
}

func (ax *Axes) legendEntries() []Directive {
	var out []Directive
	for _, d := range ax.directives {
		if d.Label() != "" {
			out = append(out, d)
		}
	}
	return out
}

func (ax *Axes) legendLayout() (legendLayout, bool) {
	entries := ax.legendEntries()
	if len(entries) == 0 {
		return legendLayout{}, false
	}
	fs := ax.metrics().fontSize
	out := legendLayout{fontSize: fs, entries: entries, rowHeight: scene.LineHeight(fs)}
	var maxW float64
	for _, e := range entries {
		maxW = math.Max(maxW, scene.MeasureText(e.Label(), fs))
	}
	n := float64(len(entries))
	out.width = fs * (2*legendBorderPad + legendHandleLength + legendTextPad)
	out.width += maxW
	out.height = 2*legendBorderPad*fs + n*out.rowHeight + (n-1)*legendLabelSpacing*fs
	return out, true
}

// place returns the legend rectangle at loc, inside box
func (l legendLayout) place(box plotpath.Rect, loc LegendLocation) plotpath.Rect {
	pad := legendAxesPad * l.fontSize
	inner := box.Inset(pad, pad, pad, pad)
	var x0, y0 float64
	switch loc {
	case UpperLeft, CenterLeft, LowerLeft:
		x0 = inner.X0
	case UpperRight, CenterRight, LowerRight:
		x0 = inner.X1 - l.width
	default:
		x0 = (inner.X0+inner.X1)/2 - l.width/2
	}
	switch loc {
	case UpperLeft, UpperCenter, UpperRight:
		y0 = inner.Y0
	case LowerLeft, LowerCenter, LowerRight:
		y0 = inner.Y1 - l.height
	default:
		y0 = (inner.Y0+inner.Y1)/2 - l.height/2
	}
	return plotpath.Rect{X0: x0, Y0: y0, X1: x0 + l.width, Y1: y0 + l.height}
}

// bestLocation returns the candidate covering the fewest
// data points and shapes; the first one wins on ties
func bestLocation(l legendLayout, c *canvas, directives []Directive) LegendLocation {
	best, bestScore := UpperRight, math.MaxInt32
	var (
		points [][2]float64
		rects  []plotpath.Rect
	)
	for _, d := range directives {
		ps, rs := d.footprint(c)
		points = append(points, ps...)
		rects = append(rects, rs...)
	}
	for loc := UpperRight; loc <= Center; loc++ {
		r := l.place(c.box, loc)
		score := 0
		for _, p := range points {
			if r.Contains(p[0], p[1]) {
				score++
			}
		}
		for _, o := range rects {
			if r.Overlaps(o) {
				score++
			}
		}
		if score < bestScore {
			best, bestScore = loc, score
		}
	}
	return best
}

// LegendLocation returns the position chosen for the legend,
// and false if there is no legend to draw.
func (ax *Axes) LegendLocation() (LegendLocation, bool) {
	if !ax.legend {
		return 0, false
	}
	l, ok := ax.legendLayout()
	if !ok {
		return 0, false
	}
	_, cells := ax.fig.renderBoxes()
	c := ax.canvas(nil, cells[ax.index()])
	return bestLocation(l, c, ax.directives), true
}

func (ax *Axes) drawLegend(c *canvas) {
	l, ok := ax.legendLayout()
	if !ok {
		return
	}
	r := l.place(c.box, bestLocation(l, c, ax.directives))

	var frame plotpath.Path
	frame.AddRect(r.X0, r.Y0, r.X1, r.Y1)
	bg := c.th.BackgroundColor()
	if bg == nil {
		bg = c.sc.Background
	}
	edge, _ := parseColor("#cccccc")
	c.fillStroke(frame, bg, edge, c.th.Px(1), 0.8)

	fs := l.fontSize
	x := r.X0 + legendBorderPad*fs
	y := r.Y0 + legendBorderPad*fs
	for _, e := range l.entries {
		mid := y + l.rowHeight/2
		handle := plotpath.Rect{
			X0: x, X1: x + legendHandleLength*fs,
			Y0: mid - 0.35*fs, Y1: mid + 0.35*fs,
		}
		e.swatch(c, handle)
		c.text(scene.Text{
			X: handle.X1 + legendTextPad*fs, Y: mid,
			Content: e.Label(), HAlign: scene.Left, VAlign: scene.Middle,
		})
		y += l.rowHeight + legendLabelSpacing*fs
	}
}
