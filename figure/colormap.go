package figure

import (
	"image/color"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultColormap is used when ImageOptions.CMap is empty.
const DefaultColormap = "kindlmann"

// lutSize is the number of colors of the discrete colormaps
const lutSize = 256

// Colormap maps the unit interval to colors.
type Colormap struct {
	name string
	lut  []color.Color    // discrete palette, or
	cm   palette.ColorMap // continuous map over [0, 1]
}

var colormaps = map[string]func() (Colormap, error){
	"hot": func() (Colormap, error) {
		// black, red, yellow then white, with increasing luminance
		cm, err := moreland.NewLuminance([]color.Color{
			color.Black,
			color.NRGBA{R: 0xff, A: 0xff},
			color.NRGBA{R: 0xff, G: 0xff, A: 0xff},
			color.White,
		})
		return Colormap{cm: cm}, err
	},
	"heat": func() (Colormap, error) { return Colormap{lut: palette.Heat(lutSize, 1).Colors()}, nil },
	"rainbow": func() (Colormap, error) {
		return Colormap{lut: palette.Rainbow(lutSize, palette.Blue, palette.Red, 1, 1, 1).Colors()}, nil
	},
	"coolwarm":  func() (Colormap, error) { return Colormap{cm: moreland.SmoothBlueRed()}, nil },
	"kindlmann": func() (Colormap, error) { return Colormap{cm: moreland.Kindlmann()}, nil },
	"blackbody": func() (Colormap, error) { return Colormap{cm: moreland.BlackBody()}, nil },
}

// Colormaps returns the supported colormap names, sorted.
func Colormaps() []string {
	out := make([]string, 0, len(colormaps))
	for name := range colormaps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LookupColormap returns the named colormap.
func LookupColormap(name string) (Colormap, error) {
	if name == "" {
		name = DefaultColormap
	}
	builder, ok := colormaps[name]
	if !ok {
		return Colormap{}, errors.Wrapf(ErrInvalidStyle, "colormap %q", name)
	}
	c, err := builder()
	if err != nil {
		return Colormap{}, errors.Wrapf(err, "building colormap %q", name)
	}
	c.name = name
	if c.cm != nil {
		c.cm.SetMin(0)
		c.cm.SetMax(1)
	}
	return c, nil
}

// Name returns the name of the colormap.
func (c Colormap) Name() string { return c.name }

// At returns the color for t, clamped to [0, 1].
// NaN values are mapped to transparent.
func (c Colormap) At(t float64) color.Color {
	if math.IsNaN(t) {
		return color.Transparent
	}
	t = math.Max(0, math.Min(1, t))
	if c.lut != nil {
		i := int(t * float64(len(c.lut)))
		if i >= len(c.lut) {
			i = len(c.lut) - 1
		}
		return c.lut[i]
	}
	col, err := c.cm.At(t)
	if err != nil { // only out of range values, excluded above
		return color.Transparent
	}
	return col
}
