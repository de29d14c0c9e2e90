package figure

import (
	"image/color"
	"math"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
	"gonum.org/v1/plot"
)

// Axes is one drawing surface of a Figure. Directives are
// drawn in the order they are added.
type Axes struct {
	fig      *Figure
	row, col int

	title, xlabel, ylabel string
	legend                bool
	xlim, ylim            *Range

	directives []Directive
	colorIdx   int // next color of the cycle
}

// SetTitle sets the text drawn above the axes.
func (ax *Axes) SetTitle(s string) { ax.title = s }

// SetXLabel sets the label of the horizontal axis.
func (ax *Axes) SetXLabel(s string) { ax.xlabel = s }

// SetYLabel sets the label of the vertical axis.
func (ax *Axes) SetYLabel(s string) { ax.ylabel = s }

// SetLabels is a shortcut for SetTitle, SetXLabel and SetYLabel.
func (ax *Axes) SetLabels(title, xlabel, ylabel string) {
	ax.title, ax.xlabel, ax.ylabel = title, xlabel, ylabel
}

func (ax *Axes) Title() string  { return ax.title }
func (ax *Axes) XLabel() string { return ax.xlabel }
func (ax *Axes) YLabel() string { return ax.ylabel }

// Legend enables the legend, built from the labeled directives
// and placed where it hides the fewest data.
func (ax *Axes) Legend() { ax.legend = true }

// HasLegend returns true if Legend has been called.
func (ax *Axes) HasLegend() bool { return ax.legend }

// SetXLim fixes the visible horizontal range, disabling autoscaling.
func (ax *Axes) SetXLim(min, max float64) { ax.xlim = &Range{min, max} }

// SetYLim fixes the visible vertical range, disabling autoscaling.
func (ax *Axes) SetYLim(min, max float64) { ax.ylim = &Range{min, max} }

// Position returns the row and column of the axes in the figure grid.
func (ax *Axes) Position() (row, col int) { return ax.row, ax.col }

// Directives returns the directives added so far.
func (ax *Axes) Directives() []Directive { return append([]Directive(nil), ax.directives...) }

func (ax *Axes) add(d Directive) { ax.directives = append(ax.directives, d) }

func (ax *Axes) nextColor() color.Color {
	c := ax.fig.theme.CycleColor(ax.colorIdx)
	ax.colorIdx++
	return c
}

// view returns the merged limits and the visible ranges
func (ax *Axes) view() (limits, Range, Range) {
	ls := make([]limits, len(ax.directives))
	for i, d := range ax.directives {
		ls[i] = d.limits()
	}
	lim := merge(ls)
	x, y := lim.viewRanges()
	// invalid fixed limits are ignored
	if ax.xlim != nil && ax.xlim.isValid() {
		x = *ax.xlim
	}
	if ax.ylim != nil && ax.ylim.isValid() {
		y = *ax.ylim
	}
	return lim, x, y
}

// XTicks returns the ticks of the horizontal axis.
func (ax *Axes) XTicks() []plot.Tick {
	_, x, _ := ax.view()
	for _, d := range ax.directives {
		if t, ok := d.(ticker); ok {
			if ticks := t.xTicks(); ticks != nil {
				return ticks
			}
		}
	}
	return defaultTicks(x)
}

// YTicks returns the ticks of the vertical axis.
func (ax *Axes) YTicks() []plot.Tick {
	_, _, y := ax.view()
	for _, d := range ax.directives {
		if t, ok := d.(ticker); ok {
			if ticks := t.yTicks(); ticks != nil {
				return ticks
			}
		}
	}
	return defaultTicks(y)
}

// metrics gathers the device lengths used to decorate the axes
type metrics struct {
	fontSize, titleSize         float64
	tickLength, tickWidth       float64
	tickPad, labelPad, titlePad float64
}

func (ax *Axes) metrics() metrics {
	th := ax.fig.theme
	return metrics{
		fontSize:   th.Px(th.FontSize),
		titleSize:  th.Px(th.TitleSize),
		tickLength: th.Px(th.TickLength),
		tickWidth:  th.Px(th.AxesWidth),
		tickPad:    th.Px(3.5),
		labelPad:   th.Px(4),
		titlePad:   th.Px(6),
	}
}

// decorations returns the space needed around the axes box by
// the ticks, labels and title, in device units
func (ax *Axes) decorations() (left, top, right, bottom float64) {
	m := ax.metrics()
	if ax.title != "" {
		top = m.titlePad + scene.LineHeight(m.titleSize)
	}
	lim, _, _ := ax.view()
	if lim.frameless {
		return left, top, right, bottom
	}
	var maxW float64
	for _, t := range ax.YTicks() {
		maxW = math.Max(maxW, scene.MeasureText(t.Label, m.fontSize))
	}
	left = m.tickLength + m.tickPad + maxW
	if ax.ylabel != "" {
		left += m.labelPad + scene.LineHeight(m.fontSize)
	}
	bottom = m.tickLength + m.tickPad + scene.LineHeight(m.fontSize)
	if ax.xlabel != "" {
		bottom += m.labelPad + scene.LineHeight(m.fontSize)
	}
	// the last x tick label overflows on the right
	if ticks := ax.XTicks(); len(ticks) != 0 {
		right = scene.MeasureText(ticks[len(ticks)-1].Label, m.fontSize) / 2
	}
	return left, top, right, bottom
}

// shrinkToAspect returns the largest rectangle centered in box
// with the aspect ratio of the data ranges
func shrinkToAspect(box plotpath.Rect, x, y Range) plotpath.Rect {
	scale := math.Min(box.Width()/x.Len(), box.Height()/y.Len())
	w, h := scale*x.Len(), scale*y.Len()
	cx, cy := (box.X0+box.X1)/2, (box.Y0+box.Y1)/2
	return plotpath.Rect{X0: cx - w/2, Y0: cy - h/2, X1: cx + w/2, Y1: cy + h/2}
}

// canvas returns the drawing context for the given box, which
// is shrinked if the directives require an equal aspect.
func (ax *Axes) canvas(sc *scene.Scene, box plotpath.Rect) *canvas {
	lim, xr, yr := ax.view()
	if lim.equalAspect {
		box = shrinkToAspect(box, xr, yr)
	}
	return &canvas{sc: sc, th: ax.fig.theme, box: box, tr: dataTransform(box, xr, yr, lim.invertY)}
}

// render draws the axes in box.
func (ax *Axes) render(sc *scene.Scene, box plotpath.Rect) {
	th := ax.fig.theme
	lim, _, _ := ax.view()
	c := ax.canvas(sc, box)
	box = c.box
	m := ax.metrics()

	if !lim.frameless && th.Grid {
		ax.drawGrid(c)
	}
	for _, d := range ax.directives {
		d.draw(c)
	}
	if !lim.frameless {
		ax.drawFrame(c, m)
	}
	if ax.title != "" {
		c.text(scene.Text{
			X: (box.X0 + box.X1) / 2, Y: box.Y0 - m.titlePad,
			Content: ax.title, Size: m.titleSize,
			HAlign: scene.Center, VAlign: scene.Bottom,
		})
	}
	if ax.legend {
		ax.drawLegend(c)
	}
}

func (ax *Axes) drawGrid(c *canvas) {
	var p plotpath.Path
	for _, t := range ax.XTicks() {
		x, _ := c.xy(t.Value, 0)
		p.AddPolyline(x, c.box.Y0, x, c.box.Y1)
	}
	for _, t := range ax.YTicks() {
		_, y := c.xy(0, t.Value)
		p.AddPolyline(c.box.X0, y, c.box.X1, y)
	}
	gray, _ := parseColor("#b0b0b0")
	c.stroke(p, gray, c.th.Px(0.8), nil, 0)
}

// drawFrame draws the spines, ticks, tick labels and axis labels
func (ax *Axes) drawFrame(c *canvas, m metrics) {
	fg := c.th.ForegroundColor()
	box := c.box

	var spines plotpath.Path
	spines.AddRect(box.X0, box.Y0, box.X1, box.Y1)
	c.stroke(spines, fg, m.tickWidth, nil, 0)

	var ticks plotpath.Path
	labelHeight := scene.LineHeight(m.fontSize)
	for _, t := range ax.XTicks() {
		x, _ := c.xy(t.Value, 0)
		if x < box.X0-1 || x > box.X1+1 {
			continue
		}
		ticks.AddPolyline(x, box.Y1, x, box.Y1+m.tickLength)
		c.text(scene.Text{
			X: x, Y: box.Y1 + m.tickLength + m.tickPad,
			Content: t.Label, HAlign: scene.Center, VAlign: scene.Top,
		})
	}
	var maxW float64
	for _, t := range ax.YTicks() {
		_, y := c.xy(0, t.Value)
		if y < box.Y0-1 || y > box.Y1+1 {
			continue
		}
		ticks.AddPolyline(box.X0-m.tickLength, y, box.X0, y)
		c.text(scene.Text{
			X: box.X0 - m.tickLength - m.tickPad, Y: y,
			Content: t.Label, HAlign: scene.Right, VAlign: scene.Middle,
		})
		maxW = math.Max(maxW, scene.MeasureText(t.Label, m.fontSize))
	}
	c.stroke(ticks, fg, m.tickWidth, nil, 0)

	if ax.xlabel != "" {
		c.text(scene.Text{
			X: (box.X0 + box.X1) / 2, Y: box.Y1 + m.tickLength + m.tickPad + labelHeight + m.labelPad,
			Content: ax.xlabel, HAlign: scene.Center, VAlign: scene.Top,
		})
	}
	if ax.ylabel != "" {
		c.text(scene.Text{
			X: box.X0 - m.tickLength - m.tickPad - maxW - m.labelPad, Y: (box.Y0 + box.Y1) / 2,
			Content: ax.ylabel, HAlign: scene.Center, VAlign: scene.Bottom, Vertical: true,
		})
	}
}
