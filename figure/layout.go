package figure

import (
	"math"

	"github.com/benoitkugler/okplot/plotpath"
)

// default subplot parameters, as fractions of the figure size
const (
	subplotLeft   = 0.125
	subplotRight  = 0.9
	subplotBottom = 0.11
	subplotTop    = 0.88
	subplotWSpace = 0.2 // relative to the average axes width
	subplotHSpace = 0.2 // relative to the average axes height
)

// padding used by the tight layout, in font size units
const tightPad = 1.08

func (ax *Axes) index() int { return ax.row*ax.fig.cols + ax.col }

// layout returns the cell of each axes, colorbars included
func (f *Figure) layout() []plotpath.Rect {
	if f.tight {
		return f.tightCells()
	}
	return f.gridCells()
}

// gridCells places the axes with the default subplot parameters
func (f *Figure) gridCells() []plotpath.Rect {
	w, h := f.theme.Size()
	totalW := w * (subplotRight - subplotLeft)
	totalH := h * (subplotTop - subplotBottom)
	cellW := totalW / (float64(f.cols) + subplotWSpace*float64(f.cols-1))
	cellH := totalH / (float64(f.rows) + subplotHSpace*float64(f.rows-1))
	out := make([]plotpath.Rect, len(f.axes))
	for i, ax := range f.axes {
		x0 := w*subplotLeft + float64(ax.col)*cellW*(1+subplotWSpace)
		y0 := h*(1-subplotTop) + float64(ax.row)*cellH*(1+subplotHSpace)
		out[i] = plotpath.Rect{X0: x0, Y0: y0, X1: x0 + cellW, Y1: y0 + cellH}
	}
	return out
}

// tightCells splits the figure in equal cells, separated by a padding,
// and reserves in each cell the space needed by the decorations,
// shared along rows and columns so that the axes stay aligned.
func (f *Figure) tightCells() []plotpath.Rect {
	w, h := f.theme.Size()
	pad := tightPad * f.theme.Px(f.theme.FontSize)
	cellW := (w - 2*pad - float64(f.cols-1)*pad) / float64(f.cols)
	cellH := (h - 2*pad - float64(f.rows-1)*pad) / float64(f.rows)

	left, right := make([]float64, f.cols), make([]float64, f.cols)
	top, bottom := make([]float64, f.rows), make([]float64, f.rows)
	for _, ax := range f.axes {
		l, t, r, b := ax.decorations()
		if cb := f.colorbarOf(ax); cb != nil {
			r = math.Max(r, cb.decoration())
		}
		left[ax.col] = math.Max(left[ax.col], l)
		right[ax.col] = math.Max(right[ax.col], r)
		top[ax.row] = math.Max(top[ax.row], t)
		bottom[ax.row] = math.Max(bottom[ax.row], b)
	}

	out := make([]plotpath.Rect, len(f.axes))
	for i, ax := range f.axes {
		x0 := pad + float64(ax.col)*(cellW+pad)
		y0 := pad + float64(ax.row)*(cellH+pad)
		cell := plotpath.Rect{X0: x0, Y0: y0, X1: x0 + cellW, Y1: y0 + cellH}
		box := cell.Inset(left[ax.col], top[ax.row], right[ax.col], bottom[ax.row])
		if box.Width() <= 0 || box.Height() <= 0 { // decorations too large, give up
			box = cell
		}
		out[i] = box
	}
	return out
}

// renderBoxes returns the box of each axes, and of its
// colorbar (empty if none)
func (f *Figure) renderBoxes() (axes, colorbars []plotpath.Rect) {
	axes = f.layout()
	colorbars = make([]plotpath.Rect, len(axes))
	for i, ax := range f.axes {
		colorbars[i] = plotpath.EmptyRect
		if cb := f.colorbarOf(ax); cb != nil {
			axes[i], colorbars[i] = cb.split(axes[i])
		}
	}
	return axes, colorbars
}
