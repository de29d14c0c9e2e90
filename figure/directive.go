package figure

import (
	"github.com/benoitkugler/okplot/plotpath"
	"gonum.org/v1/plot"
)

// Kind identifies the type of a directive.
type Kind uint8

const (
	KindLine Kind = iota
	KindScatter
	KindBar
	KindHistogram
	KindPie
	KindBox
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindScatter:
		return "scatter"
	case KindBar:
		return "bar"
	case KindHistogram:
		return "histogram"
	case KindPie:
		return "pie"
	case KindBox:
		return "box"
	case KindImage:
		return "image"
	default:
		return "<unknown Kind>"
	}
}

// Directive is one plotting command added to an Axes.
type Directive interface {
	Kind() Kind
	// Label is the legend entry, empty to skip the directive.
	Label() string

	limits() limits
	draw(c *canvas)
	// swatch draws the legend handle, fitting in the device rectangle r
	swatch(c *canvas, r plotpath.Rect)
	// footprint returns the device points and rectangles covered,
	// used to place the legend
	footprint(c *canvas) ([][2]float64, []plotpath.Rect)
}

// ticker is implemented by directives imposing their own ticks,
// such as categorical bars.
type ticker interface {
	xTicks() []plot.Tick
	yTicks() []plot.Tick
}

func checkXY(x, y []float64) error {
	if len(x) != len(y) {
		return lengthMismatch(len(x), len(y))
	}
	if len(x) == 0 {
		return ErrEmptyData
	}
	return nil
}
