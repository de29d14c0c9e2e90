package figure

import (
	"math"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
)

const (
	colorbarFraction = 0.15 // of the parent width
	colorbarPad      = 0.05 // of the parent width
	colorbarAspect   = 20   // height / width
	colorbarSteps    = 64   // number of strips of the gradient
)

// Colorbar shows the colormap of an image, on the right of its Axes.
type Colorbar struct {
	img    *Image
	parent *Axes
}

// Colorbar attaches a colorbar for img to ax, replacing a previous one.
// img must have been added to ax.
func (f *Figure) Colorbar(img *Image, ax *Axes) (*Colorbar, error) {
	if img == nil || ax == nil {
		return nil, errors.New("colorbar requires an image and its axes")
	}
	if ax.fig != f {
		return nil, errors.New("colorbar axes belong to another figure")
	}
	found := false
	for _, d := range ax.directives {
		if d == Directive(img) {
			found = true
		}
	}
	if !found {
		return nil, errors.New("colorbar image is not drawn on the given axes")
	}
	cb := &Colorbar{img: img, parent: ax}
	for i, other := range f.colorbars {
		if other.parent == ax {
			f.colorbars[i] = cb
			return cb, nil
		}
	}
	f.colorbars = append(f.colorbars, cb)
	return cb, nil
}

func (f *Figure) colorbarOf(ax *Axes) *Colorbar {
	for _, cb := range f.colorbars {
		if cb.parent == ax {
			return cb
		}
	}
	return nil
}

// Ticks returns the ticks of the colorbar scale.
func (cb *Colorbar) Ticks() []plot.Tick {
	vmin, vmax := cb.img.Norm()
	return defaultTicks(Range{vmin, vmax})
}

// split steals the colorbar space from the parent box
func (cb *Colorbar) split(box plotpath.Rect) (parent, bar plotpath.Rect) {
	w := box.Width()
	parent = box
	parent.X1 = box.X0 + w*(1-colorbarFraction-colorbarPad)
	x0 := box.X0 + w*(1-colorbarFraction)
	barW := math.Min(box.Height()/colorbarAspect, w*colorbarFraction)
	bar = plotpath.Rect{X0: x0, Y0: box.Y0, X1: x0 + barW, Y1: box.Y1}
	return parent, bar
}

// decoration returns the space needed on the right of the bar
// by the ticks and their labels
func (cb *Colorbar) decoration() float64 {
	m := cb.parent.metrics()
	var maxW float64
	for _, t := range cb.Ticks() {
		maxW = math.Max(maxW, scene.MeasureText(t.Label, m.fontSize))
	}
	return m.tickLength + m.tickPad + maxW
}

func (cb *Colorbar) render(sc *scene.Scene, bar plotpath.Rect) {
	th := cb.parent.fig.theme
	vmin, vmax := cb.img.Norm()
	if vmin == vmax {
		vmax = vmin + 1
	}
	c := &canvas{sc: sc, th: th, box: bar, tr: dataTransform(bar, Range{0, 1}, Range{vmin, vmax}, false)}
	m := cb.parent.metrics()

	step := bar.Height() / colorbarSteps
	for i := 0; i < colorbarSteps; i++ {
		t := (float64(i) + 0.5) / colorbarSteps
		y1 := bar.Y1 - float64(i)*step
		var p plotpath.Path
		p.AddRect(bar.X0, math.Max(bar.Y0, y1-step-seam), bar.X1, y1)
		c.fill(p, cb.img.cmap.At(t), 0)
	}

	fg := th.ForegroundColor()
	var frame plotpath.Path
	frame.AddRect(bar.X0, bar.Y0, bar.X1, bar.Y1)
	c.stroke(frame, fg, m.tickWidth, nil, 0)

	var ticks plotpath.Path
	for _, t := range cb.Ticks() {
		_, y := c.xy(0, t.Value)
		ticks.AddPolyline(bar.X1, y, bar.X1+m.tickLength, y)
		c.text(scene.Text{
			X: bar.X1 + m.tickLength + m.tickPad, Y: y,
			Content: t.Label, HAlign: scene.Left, VAlign: scene.Middle,
		})
	}
	c.stroke(ticks, fg, m.tickWidth, nil, 0)
}
