package figure

import (
	"github.com/benoitkugler/okplot/plotpath"
	"github.com/pkg/errors"
)

// ImageOptions customizes a heat map.
type ImageOptions struct {
	CMap string // colormap name, see Colormaps
	// only "nearest" (or "none") is supported: each cell is a flat rectangle
	Interpolation string
	// color scale bounds; when both are zero, the data range is used
	VMin, VMax float64
}

// Image is a heat map: cell (i, j) of the matrix is drawn
// centered on (j, i), with the first row on top.
type Image struct {
	data       [][]float64
	rows, cols int
	cmap       Colormap
	vmin, vmax float64
}

// ImShow adds a heat map of the row major matrix data.
func (ax *Axes) ImShow(data [][]float64, opts ImageOptions) (*Image, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyData
	}
	switch opts.Interpolation {
	case "", "nearest", "none":
	default:
		return nil, errors.Wrapf(ErrInvalidStyle, "interpolation %q", opts.Interpolation)
	}
	if !isFinite(opts.VMin) || !isFinite(opts.VMax) {
		return nil, errors.Wrapf(ErrInvalidStyle, "color scale [%g, %g]", opts.VMin, opts.VMax)
	}
	cmap, err := LookupColormap(opts.CMap)
	if err != nil {
		return nil, err
	}
	img := &Image{rows: len(data), cols: len(data[0]), cmap: cmap}
	values := emptyRange
	for i, row := range data {
		if len(row) != img.cols {
			return nil, errors.Wrapf(lengthMismatch(len(row), img.cols), "row %d", i)
		}
		img.data = append(img.data, append([]float64(nil), row...))
		values = values.add(row...)
	}
	img.vmin, img.vmax = values.Min, values.Max
	if opts.VMin != 0 || opts.VMax != 0 {
		img.vmin, img.vmax = opts.VMin, opts.VMax
	}
	if values.isEmpty() && img.vmin > img.vmax { // no finite value
		img.vmin, img.vmax = 0, 1
	}
	ax.add(img)
	return img, nil
}

func (*Image) Kind() Kind { return KindImage }

func (*Image) Label() string { return "" }

// Shape returns the matrix dimensions.
func (img *Image) Shape() (rows, cols int) { return img.rows, img.cols }

// Norm returns the values mapped to both ends of the colormap.
func (img *Image) Norm() (vmin, vmax float64) { return img.vmin, img.vmax }

// Colormap returns the colormap in use.
func (img *Image) Colormap() Colormap { return img.cmap }

// normalize maps v to [0, 1]
func (img *Image) normalize(v float64) float64 {
	if img.vmax == img.vmin {
		return 0.5
	}
	return (v - img.vmin) / (img.vmax - img.vmin)
}

func (img *Image) limits() limits {
	return limits{
		x:           Range{-0.5, float64(img.cols) - 0.5},
		y:           Range{-0.5, float64(img.rows) - 0.5},
		noMargin:    true,
		invertY:     true,
		equalAspect: true,
	}
}

// seam is the overlap between adjacent cells, in device units,
// hiding antialiasing gaps
const seam = 0.5

func (img *Image) draw(c *canvas) {
	for i, row := range img.data {
		for j, v := range row {
			r := c.rect(float64(j)-0.5, float64(i)-0.5, float64(j)+0.5, float64(i)+0.5)
			var p plotpath.Path
			p.AddRect(r.X0-seam/2, r.Y0-seam/2, r.X1+seam/2, r.Y1+seam/2)
			c.fill(p, img.cmap.At(img.normalize(v)), 0)
		}
	}
}

func (img *Image) swatch(c *canvas, r plotpath.Rect) {
	var p plotpath.Path
	p.AddRect(r.X0, r.Y0, r.X1, r.Y1)
	c.fill(p, img.cmap.At(0.5), 0)
}

func (img *Image) footprint(c *canvas) ([][2]float64, []plotpath.Rect) {
	return nil, []plotpath.Rect{c.rect(-0.5, -0.5, float64(img.cols)-0.5, float64(img.rows)-0.5)}
}
