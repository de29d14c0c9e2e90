package figure

import (
	"image/color"
	"strings"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
	"github.com/pkg/errors"
)

// Style holds the cosmetic options of line, scatter, bar and histogram
// directives. Zero values select the theme defaults.
type Style struct {
	Color     string  // face or line color; empty for the next color of the cycle
	EdgeColor string  // outline of bars and markers; empty for none (bars) or Color (markers)
	LineStyle string  // "-", "--", "-.", ":" or "none"
	Marker    string  // "o", ".", "x", "+", "s", "^", "v", "D" or empty
	Label     string  // legend entry; empty to skip the directive in the legend
	LineWidth float64 // in points
	Size      float64 // marker size, in points
	Alpha     float64 // opacity in ]0, 1]; zero means opaque
}

// lineStyle describes how a polyline is stroked.
type lineStyle struct {
	none bool
	dash []float64 // in units of the line width
}

var lineStyles = map[string]lineStyle{
	"":       {},
	"-":      {},
	"solid":  {},
	"--":     {dash: []float64{3.7, 1.6}},
	"dashed": {dash: []float64{3.7, 1.6}},
	"-.":     {dash: []float64{6.4, 1.6, 1, 1.6}},
	":":      {dash: []float64{1, 1.65}},
	"dotted": {dash: []float64{1, 1.65}},
	"none":   {none: true},
	" ":      {none: true},
}

func parseLineStyle(s string) (lineStyle, error) {
	ls, ok := lineStyles[strings.ToLower(s)]
	if !ok {
		return ls, errors.Wrapf(ErrInvalidStyle, "line style %q", s)
	}
	return ls, nil
}

// dashes returns the dash pattern in device units
func (ls lineStyle) dashes(width float64) []float64 {
	if len(ls.dash) == 0 {
		return nil
	}
	out := make([]float64, len(ls.dash))
	for i, d := range ls.dash {
		out[i] = d * width
	}
	return out
}

func parseColor(spec string) (color.Color, error) {
	c, err := scene.ParseColor(spec)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidStyle, err.Error())
	}
	return c, nil
}

func parseMarker(code string) (plotpath.Marker, error) {
	m, err := plotpath.ParseMarker(code)
	if err != nil {
		return m, errors.Wrap(ErrInvalidStyle, err.Error())
	}
	return m, nil
}

// resolved is a Style with colors and sizes resolved against the theme
type resolved struct {
	color     color.Color
	edge      color.Color
	line      lineStyle
	marker    plotpath.Marker
	label     string
	lineWidth float64 // device units
	size      float64 // device units
	alpha     float64
}

// resolve fills the defaults. The color cycle only advances
// when no color is given.
func (ax *Axes) resolve(st Style, defaultMarker string) (resolved, error) {
	var (
		out resolved
		err error
	)
	th := ax.fig.theme
	if st.Color == "" {
		out.color = ax.nextColor()
	} else if out.color, err = parseColor(st.Color); err != nil {
		return out, err
	}
	if st.EdgeColor != "" {
		if out.edge, err = parseColor(st.EdgeColor); err != nil {
			return out, err
		}
	}
	if out.line, err = parseLineStyle(st.LineStyle); err != nil {
		return out, err
	}
	marker := st.Marker
	if marker == "" {
		marker = defaultMarker
	}
	if out.marker, err = parseMarker(marker); err != nil {
		return out, err
	}
	out.label = st.Label
	out.lineWidth = th.Px(th.LineWidth)
	if st.LineWidth > 0 {
		out.lineWidth = th.Px(st.LineWidth)
	}
	out.size = th.Px(th.MarkerSize)
	if st.Size > 0 {
		out.size = th.Px(st.Size)
	}
	out.alpha = st.Alpha
	if out.alpha < 0 || out.alpha > 1 {
		return out, errors.Wrapf(ErrInvalidStyle, "alpha %g out of [0, 1]", st.Alpha)
	}
	return out, nil
}
