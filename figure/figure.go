// Package figure implements the charting model: a Figure owns
// a grid of Axes, on which plot directives are added.
// Figures are lowered to a scene.Scene, which is then painted by
// one of the raster, PDF or SVG backends.
package figure

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/okplot/plotpdf"
	"github.com/benoitkugler/okplot/plotraster"
	"github.com/benoitkugler/okplot/plotsvg"
	"github.com/benoitkugler/okplot/scene"
	"github.com/benoitkugler/okplot/theme"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Figure is the top level container, owning its Axes.
type Figure struct {
	theme      theme.Theme
	rows, cols int
	axes       []*Axes
	colorbars  []*Colorbar
	tight      bool
}

// Option customizes a new Figure.
type Option func(*Figure)

// WithTheme replaces the default theme.
func WithTheme(th theme.Theme) Option {
	return func(f *Figure) { f.theme = th }
}

// WithSize sets the figure size, in inches.
func WithSize(width, height float64) Option {
	return func(f *Figure) { f.theme.Width, f.theme.Height = width, height }
}

// WithDPI sets the resolution, in pixels per inch.
func WithDPI(dpi float64) Option {
	return func(f *Figure) { f.theme.DPI = dpi }
}

// Subplots creates a figure with a rows x cols grid of Axes,
// returned in row major order. Values lower than 1 are treated as 1.
func Subplots(rows, cols int, opts ...Option) (*Figure, []*Axes) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	f := &Figure{theme: theme.Default(), rows: rows, cols: cols}
	for _, opt := range opts {
		opt(f)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			f.axes = append(f.axes, &Axes{fig: f, row: i, col: j})
		}
	}
	return f, append([]*Axes(nil), f.axes...)
}

// Axes returns the axes of the figure, in row major order.
func (f *Figure) Axes() []*Axes { return append([]*Axes(nil), f.axes...) }

// Grid returns the number of rows and columns.
func (f *Figure) Grid() (rows, cols int) { return f.rows, f.cols }

// Theme returns the theme used by the figure.
func (f *Figure) Theme() theme.Theme { return f.theme }

// TightLayout adjusts the axes positions so that titles,
// tick labels and axis labels don't overlap.
func (f *Figure) TightLayout() { f.tight = true }

// Show displays the figure. There is no display in headless context,
// so this only logs.
func (f *Figure) Show() {
	log.WithField("axes", len(f.axes)).Debug("no display available, skipping show")
}

// Render lowers the figure to a device independent scene,
// whose unit is the pixel at the theme resolution.
func (f *Figure) Render() *scene.Scene {
	w, h := f.theme.Size()
	sc := scene.New(w, h, f.theme.BackgroundColor())
	boxes, bars := f.renderBoxes()
	for i, ax := range f.axes {
		ax.render(sc, boxes[i])
		if cb := f.colorbarOf(ax); cb != nil {
			cb.render(sc, bars[i])
		}
	}
	return sc
}

type encoder func(io.Writer, *scene.Scene) error

var encoders = map[string]encoder{
	".png": plotraster.Encode,
	".pdf": plotpdf.Encode,
	".svg": plotsvg.Encode,
}

// Formats returns the supported file extensions.
func Formats() []string { return []string{"png", "pdf", "svg"} }

func encoderFor(format string) (encoder, error) {
	format = strings.ToLower(format)
	if !strings.HasPrefix(format, ".") {
		format = "." + format
	}
	enc, ok := encoders[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return enc, nil
}

// Encode writes the figure to out, in the given format ("png", "pdf" or "svg").
func (f *Figure) Encode(out io.Writer, format string) error {
	enc, err := encoderFor(format)
	if err != nil {
		return err
	}
	return enc(out, f.Render())
}

// Save writes the figure to path, the format being chosen from the
// file extension. An existing file is overwritten.
func (f *Figure) Save(path string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf, filepath.Ext(path)); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	log.WithFields(log.Fields{"path": path, "bytes": buf.Len()}).Debug("figure saved")
	return nil
}
