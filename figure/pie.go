package figure

import (
	"fmt"
	"image/color"
	"math"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
)

const (
	pieLabelDistance = 1.1
	piePctDistance   = 0.6
	pieExtent        = 1.25
)

// PieOptions customizes a pie chart.
type PieOptions struct {
	Labels     []string // one per wedge, or empty
	AutoPct    string   // fmt verb applied to the percentage of each wedge, such as "%1.1f%%"; empty to skip
	StartAngle float64  // angle of the first wedge start, in degrees, counter-clockwise from the x axis
	Colors     []string // one per wedge, or empty for the color cycle
	Clockwise  bool
}

// Pie is a disk divided in wedges proportional to the sizes.
type Pie struct {
	fractions []float64
	labels    []string
	colors    []color.Color
	opts      PieOptions
}

// Pie adds a pie chart. Sizes are normalized by their sum.
func (ax *Axes) Pie(sizes []float64, opts PieOptions) (*Pie, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyData
	}
	if len(opts.Labels) != 0 && len(opts.Labels) != len(sizes) {
		return nil, errors.Wrap(lengthMismatch(len(opts.Labels), len(sizes)), "pie labels")
	}
	if len(opts.Colors) != 0 && len(opts.Colors) != len(sizes) {
		return nil, errors.Wrap(lengthMismatch(len(opts.Colors), len(sizes)), "pie colors")
	}
	var total float64
	for _, s := range sizes {
		if err := plotter.CheckFloats(s); err != nil {
			return nil, errors.Wrap(err, "pie sizes")
		}
		if s < 0 {
			return nil, errors.Errorf("invalid pie size %g", s)
		}
		total += s
	}
	if total == 0 {
		return nil, errors.Wrap(ErrEmptyData, "pie sizes sum to zero")
	}
	p := &Pie{
		fractions: make([]float64, len(sizes)),
		labels:    append([]string(nil), opts.Labels...),
		colors:    make([]color.Color, len(sizes)),
		opts:      opts,
	}
	for i, s := range sizes {
		p.fractions[i] = s / total
		if len(opts.Colors) == 0 {
			p.colors[i] = ax.nextColor()
			continue
		}
		c, err := parseColor(opts.Colors[i])
		if err != nil {
			return nil, err
		}
		p.colors[i] = c
	}
	ax.add(p)
	return p, nil
}

func (*Pie) Kind() Kind { return KindPie }

func (*Pie) Label() string { return "" }

// Percentages returns the share of each wedge, formatted with AutoPct
// (or "%1.1f%%" if empty).
func (p *Pie) Percentages() []string {
	format := p.opts.AutoPct
	if format == "" {
		format = "%1.1f%%"
	}
	out := make([]string, len(p.fractions))
	for i, f := range p.fractions {
		out[i] = fmt.Sprintf(format, 100*f)
	}
	return out
}

// angles returns the start and end angles of each wedge, in radians
func (p *Pie) angles() [][2]float64 {
	out := make([][2]float64, len(p.fractions))
	theta := p.opts.StartAngle * math.Pi / 180
	sign := 1.
	if p.opts.Clockwise {
		sign = -1
	}
	for i, f := range p.fractions {
		next := theta + sign*2*math.Pi*f
		out[i] = [2]float64{theta, next}
		theta = next
	}
	return out
}

func (p *Pie) limits() limits {
	r := Range{-pieExtent, pieExtent}
	return limits{x: r, y: r, noMargin: true, equalAspect: true, frameless: true}
}

// disk returns the device center and radius
func (p *Pie) disk(c *canvas) (cx, cy, r float64) {
	cx, cy = c.xy(0, 0)
	x1, _ := c.xy(1, 0)
	return cx, cy, math.Abs(x1 - cx)
}

func (p *Pie) draw(c *canvas) {
	cx, cy, r := p.disk(c)
	var pcts []string
	if p.opts.AutoPct != "" {
		pcts = p.Percentages()
	}
	for i, a := range p.angles() {
		if p.fractions[i] == 0 {
			continue
		}
		var path plotpath.Path
		path.AddWedge(cx, cy, r, a[0], a[1])
		c.fill(path, p.colors[i], 0)
	}
	// texts are drawn on top of every wedge
	for i, a := range p.angles() {
		mid := (a[0] + a[1]) / 2
		cos, sin := math.Cos(mid), math.Sin(mid)
		if len(p.labels) != 0 {
			align := scene.Right
			if cos > 0 {
				align = scene.Left
			}
			c.text(scene.Text{
				X: cx + pieLabelDistance*r*cos, Y: cy - pieLabelDistance*r*sin,
				Content: p.labels[i], HAlign: align, VAlign: scene.Middle,
			})
		}
		if pcts != nil {
			c.text(scene.Text{
				X: cx + piePctDistance*r*cos, Y: cy - piePctDistance*r*sin,
				Content: pcts[i], HAlign: scene.Center, VAlign: scene.Middle,
			})
		}
	}
}

func (p *Pie) swatch(c *canvas, r plotpath.Rect) {
	var path plotpath.Path
	path.AddRect(r.X0, r.Y0, r.X1, r.Y1)
	c.fill(path, p.colors[0], 0)
}

// footprint returns the extent of each wedge
func (p *Pie) footprint(c *canvas) ([][2]float64, []plotpath.Rect) {
	cx, cy, r := p.disk(c)
	var out []plotpath.Rect
	for i, a := range p.angles() {
		if p.fractions[i] == 0 {
			continue
		}
		var path plotpath.Path
		path.AddWedge(cx, cy, r, a[0], a[1])
		out = append(out, path.Bounds())
	}
	return nil, out
}
