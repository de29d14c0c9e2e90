package figure

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var (
	xs = []float64{1, 2, 3, 4, 5}
	ys = []float64{1, 4, 9, 16, 25}
)

func TestSubplots(t *testing.T) {
	Convey("Given a 2x1 figure", t, func() {
		fig, axes := Subplots(2, 1)
		So(axes, ShouldHaveLength, 2)
		rows, cols := fig.Grid()
		So(rows, ShouldEqual, 2)
		So(cols, ShouldEqual, 1)

		Convey("Axes are labeled independently", func() {
			axes[0].SetLabels("Subplot 1", "x-axis", "y-axis")
			axes[1].SetTitle("Subplot 2")
			So(axes[0].Title(), ShouldEqual, "Subplot 1")
			So(axes[0].XLabel(), ShouldEqual, "x-axis")
			So(axes[1].Title(), ShouldEqual, "Subplot 2")
			So(axes[1].XLabel(), ShouldBeEmpty)
		})

		Convey("The first axes is above the second one", func() {
			_, err := axes[0].Plot(xs, ys, Style{})
			So(err, ShouldBeNil)
			_, err = axes[1].Plot(xs, xs, Style{})
			So(err, ShouldBeNil)
			for _, tight := range []bool{false, true} {
				fig.tight = tight
				boxes, _ := fig.renderBoxes()
				So(boxes[0].Y1, ShouldBeLessThan, boxes[1].Y0)
				So(boxes[0].X0, ShouldAlmostEqual, boxes[1].X0)
			}
		})
	})

	Convey("Invalid grid sizes are clamped", t, func() {
		_, axes := Subplots(0, -2)
		So(axes, ShouldHaveLength, 1)
	})
}

func TestTightLayout(t *testing.T) {
	fig, axes := Subplots(2, 1)
	for _, ax := range axes {
		_, err := ax.Plot(xs, ys, Style{})
		require.NoError(t, err)
		ax.SetLabels("Subplot", "x-axis", "y-axis")
	}
	fig.TightLayout()
	boxes, _ := fig.renderBoxes()

	_, top, _, bottom := axes[1].decorations()
	// the x label of the first axes and the title of the
	// second one fit between the boxes
	assert.GreaterOrEqual(t, boxes[1].Y0-boxes[0].Y1, top+bottom)
	w, h := fig.Theme().Size()
	for _, b := range boxes {
		assert.True(t, b.X0 > 0 && b.X1 < w && b.Y0 > 0 && b.Y1 < h)
	}
}

func TestLengthMismatch(t *testing.T) {
	_, axes := Subplots(1, 1)
	ax := axes[0]

	_, err := ax.Plot([]float64{1, 2}, []float64{1}, Style{})
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = ax.Scatter([]float64{1}, []float64{1, 2}, Style{})
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = ax.Bar([]string{"A", "B"}, []float64{1}, Style{})
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = ax.Pie([]float64{1, 2}, PieOptions{Labels: []string{"A"}})
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = ax.Pie([]float64{1, 2}, PieOptions{Colors: []string{"red", "blue", "green"}})
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = ax.ImShow([][]float64{{1, 2}, {3}}, ImageOptions{})
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = ax.Plot(nil, nil, Style{})
	assert.Equal(t, ErrEmptyData, errors.Cause(err))

	assert.Empty(t, ax.Directives())
}

func TestInvalidStyle(t *testing.T) {
	_, axes := Subplots(1, 1)
	ax := axes[0]
	for _, st := range []Style{
		{Color: "not a color"},
		{LineStyle: "~~"},
		{Marker: "*"},
		{Alpha: 2},
	} {
		_, err := ax.Plot(xs, ys, st)
		assert.Equal(t, ErrInvalidStyle, errors.Cause(err), "%+v", st)
	}

	_, err := ax.ImShow([][]float64{{1}}, ImageOptions{Interpolation: "bicubic"})
	assert.Equal(t, ErrInvalidStyle, errors.Cause(err))
	_, err = ax.ImShow([][]float64{{1}}, ImageOptions{CMap: "jet2"})
	assert.Equal(t, ErrInvalidStyle, errors.Cause(err))
}

func TestColorCycle(t *testing.T) {
	fig, axes := Subplots(1, 1)
	l1, err := axes[0].Plot(xs, ys, Style{})
	require.NoError(t, err)
	l2, err := axes[0].Plot(xs, ys, Style{Color: "red"})
	require.NoError(t, err)
	l3, err := axes[0].Plot(xs, ys, Style{})
	require.NoError(t, err)

	th := fig.Theme()
	assert.Equal(t, th.CycleColor(0), l1.style.color)
	assert.NotEqual(t, th.CycleColor(1), l2.style.color)
	assert.Equal(t, th.CycleColor(1), l3.style.color)
}

func TestBar(t *testing.T) {
	Convey("Bars keep the category order", t, func() {
		_, axes := Subplots(1, 1)
		cats := []string{"A", "B", "C", "D", "E"}
		b, err := axes[0].Bar(cats, []float64{10, 20, 15, 25, 30}, Style{Color: "green", Label: "Data Points"})
		So(err, ShouldBeNil)
		So(b.Kind(), ShouldEqual, KindBar)
		So(b.Categories(), ShouldResemble, cats)
		So(b.Values(), ShouldResemble, []float64{10, 20, 15, 25, 30})

		ticks := axes[0].XTicks()
		So(ticks, ShouldHaveLength, 5)
		for i, tick := range ticks {
			So(tick.Label, ShouldEqual, cats[i])
			So(tick.Value, ShouldEqual, float64(i))
		}

		Convey("And start from zero", func() {
			_, _, y := axes[0].view()
			So(y.Min, ShouldEqual, 0)
			So(y.Max, ShouldBeGreaterThan, 30)
		})

		Convey("The legend avoids the tallest bars", func() {
			axes[0].Legend()
			loc, ok := axes[0].LegendLocation()
			So(ok, ShouldBeTrue)
			So(loc, ShouldEqual, UpperLeft)
		})
	})
}

func TestPie(t *testing.T) {
	Convey("Given the pie of four shares", t, func() {
		_, axes := Subplots(1, 1)
		p, err := axes[0].Pie([]float64{20, 30, 25, 25}, PieOptions{
			Labels:     []string{"A", "B", "C", "D"},
			AutoPct:    "%1.1f%%",
			StartAngle: 90,
			Colors:     []string{"red", "blue", "green", "yellow"},
		})
		So(err, ShouldBeNil)

		Convey("Percentages are formatted with one decimal", func() {
			So(p.Percentages(), ShouldResemble, []string{"20.0%", "30.0%", "25.0%", "25.0%"})
		})

		Convey("Wedges cover the full turn, counter-clockwise from the start angle", func() {
			angles := p.angles()
			So(angles[0][0], ShouldAlmostEqual, 3.141592653589793/2)
			So(angles[1][0], ShouldAlmostEqual, angles[0][1])
			So(angles[3][1]-angles[0][0], ShouldAlmostEqual, 2*3.141592653589793)
		})

		Convey("The axes are hidden and square", func() {
			lim, x, y := axes[0].view()
			So(lim.frameless, ShouldBeTrue)
			So(x, ShouldResemble, y)
			c := axes[0].canvas(nil, axes[0].fig.gridCells()[0])
			So(c.box.Width(), ShouldAlmostEqual, c.box.Height())
		})
	})

	Convey("Pie rejects a null total", t, func() {
		_, axes := Subplots(1, 1)
		_, err := axes[0].Pie([]float64{0, 0}, PieOptions{})
		So(errors.Cause(err), ShouldEqual, ErrEmptyData)
	})
}

func TestHist(t *testing.T) {
	_, axes := Subplots(1, 1)
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i%100) / 10
	}
	h, err := axes[0].Hist(values, 30, Style{Color: "orange", EdgeColor: "black"})
	require.NoError(t, err)

	counts := h.Counts()
	assert.Len(t, counts, 30)
	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 1000., total)

	edges := h.Edges()
	assert.Len(t, edges, 31)
	assert.Equal(t, 0., edges[0])
	assert.InDelta(t, 9.9, edges[30], 1e-9)
	assert.NotNil(t, h.style.edge)
}

func TestBoxPlot(t *testing.T) {
	Convey("Given two samples, the second one with an outlier", t, func() {
		_, axes := Subplots(1, 1)
		s1 := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
		s2 := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}
		bp, err := axes[0].BoxPlot([][]float64{s1, s2}, BoxOptions{Notch: true, Filled: true, Horizontal: true})
		So(err, ShouldBeNil)

		stats := bp.Stats()
		So(stats, ShouldHaveLength, 2)
		So(stats[0].Median, ShouldEqual, 5)
		So(stats[0].Outliers, ShouldBeEmpty)
		So(stats[1].Outliers, ShouldResemble, []float64{100})
		So(stats[1].AdjHigh, ShouldEqual, 8)

		Convey("The notch is centered on the median", func() {
			st := stats[0]
			So(st.NotchLow, ShouldBeLessThan, st.Median)
			So(st.NotchHigh-st.Median, ShouldAlmostEqual, st.Median-st.NotchLow)
		})

		Convey("Horizontal boxes are labeled on the y axis", func() {
			ticks := axes[0].YTicks()
			So(ticks, ShouldHaveLength, 2)
			So(ticks[0].Label, ShouldEqual, "1")
			So(ticks[1].Value, ShouldEqual, 2)
			_, x, _ := axes[0].view()
			So(x.Max, ShouldBeGreaterThan, 100)
		})
	})

	Convey("Empty samples are rejected", t, func() {
		_, axes := Subplots(1, 1)
		_, err := axes[0].BoxPlot([][]float64{{1}, {}}, BoxOptions{})
		So(errors.Cause(err), ShouldEqual, ErrEmptyData)
	})
}

func TestImageAndColorbar(t *testing.T) {
	Convey("Given a heat map", t, func() {
		fig, axes := Subplots(1, 1)
		data := [][]float64{{0, 0.5}, {0.25, 1}}
		img, err := axes[0].ImShow(data, ImageOptions{CMap: "hot", Interpolation: "nearest"})
		So(err, ShouldBeNil)
		rows, cols := img.Shape()
		So(rows, ShouldEqual, 2)
		So(cols, ShouldEqual, 2)
		vmin, vmax := img.Norm()
		So(vmin, ShouldEqual, 0)
		So(vmax, ShouldEqual, 1)
		So(img.Colormap().Name(), ShouldEqual, "hot")

		Convey("A colorbar steals space on the right", func() {
			before, _ := fig.renderBoxes()
			cb, err := fig.Colorbar(img, axes[0])
			So(err, ShouldBeNil)
			So(cb.Ticks(), ShouldNotBeEmpty)
			after, bars := fig.renderBoxes()
			So(after[0].X1, ShouldBeLessThan, before[0].X1)
			So(bars[0].X0, ShouldBeGreaterThan, after[0].X1)
			So(bars[0].X1, ShouldBeLessThanOrEqualTo, before[0].X1)
		})

		Convey("A colorbar requires the image axes", func() {
			other, otherAxes := Subplots(1, 1)
			_, err := other.Colorbar(img, otherAxes[0])
			So(err, ShouldNotBeNil)
			_, err = fig.Colorbar(nil, axes[0])
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Colormaps clamp their input", t, func() {
		for _, name := range Colormaps() {
			cm, err := LookupColormap(name)
			So(err, ShouldBeNil)
			So(cm.At(-1), ShouldResemble, cm.At(0))
			So(cm.At(2), ShouldResemble, cm.At(1))
		}
	})
}

func simpleFigure(t *testing.T) *Figure {
	fig, axes := Subplots(1, 1)
	_, err := axes[0].Plot(xs, ys, Style{Color: "red", LineStyle: "--", Marker: "o", Label: "Data Points"})
	require.NoError(t, err)
	axes[0].SetLabels("Customized Plot", "x-axis", "y-axis")
	axes[0].Legend()
	return fig
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fig := simpleFigure(t)

	for _, name := range []string{"plot.png", "plot.svg", "plot.pdf", "PLOT.PNG"} {
		path := filepath.Join(dir, name)
		require.NoError(t, fig.Save(path))
		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, st.Size(), name)
	}

	err := fig.Save(filepath.Join(dir, "plot.bmp"))
	assert.Equal(t, ErrUnsupportedFormat, errors.Cause(err))
	_, err = os.Stat(filepath.Join(dir, "plot.bmp"))
	assert.True(t, os.IsNotExist(err))

	err = fig.Save(filepath.Join(dir, "missing", "plot.png"))
	assert.Error(t, err)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<20), 0o644))

	fig := simpleFigure(t)
	require.NoError(t, fig.Save(path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, fig.Save(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Less(t, len(first), 1<<20)
	assert.True(t, bytes.HasPrefix(first, []byte("\x89PNG")))
}

func TestEncodeSVG(t *testing.T) {
	fig := simpleFigure(t)
	var buf bytes.Buffer
	require.NoError(t, fig.Encode(&buf, "svg"))
	out := buf.String()
	for _, text := range []string{"Customized Plot", "x-axis", "y-axis", "Data Points"} {
		assert.True(t, strings.Contains(out, text), text)
	}
}

func TestExpand(t *testing.T) {
	r := expand(Range{0, 10}, true, false)
	assert.Equal(t, Range{0, 10.5}, r)
	r = expand(Range{3, 3}, false, false)
	assert.True(t, r.Min < 3 && r.Max > 3)

	for _, tick := range defaultTicks(Range{0.8, 5.2}) {
		assert.True(t, tick.Value >= 0.8 && tick.Value <= 5.2)
		assert.NotEmpty(t, tick.Label)
	}
}

func TestTickLabels(t *testing.T) {
	// view range of y = 1 ... 25
	ticks := defaultTicks(expand(Range{1, 25}, false, false))
	assert.GreaterOrEqual(t, len(ticks), minTicks)
	for i, tick := range ticks {
		assert.NotContains(t, tick.Label, ".", tick.Label)
		if i > 0 {
			assert.Greater(t, tick.Value, ticks[i-1].Value)
		}
	}

	seen := map[string]bool{}
	var fractional bool
	for _, tick := range defaultTicks(Range{0, 0.5}) {
		assert.False(t, seen[tick.Label], tick.Label)
		seen[tick.Label] = true
		fractional = fractional || strings.Contains(tick.Label, ".")
	}
	assert.True(t, fractional)

	for _, r := range []Range{{0, 0}, {1, 0}, {math.NaN(), 1}, {0, math.Inf(1)}, {math.Inf(-1), math.Inf(1)}} {
		assert.Nil(t, defaultTicks(r), "%v", r)
	}
}

func TestPolylinesBreak(t *testing.T) {
	c := &canvas{tr: plotpath.Identity}
	nan, inf := math.NaN(), math.Inf(1)
	p := c.polylines([]float64{1, 2, 3, 4, 5, 6}, []float64{1, 2, nan, 4, 5, inf})
	var moves int
	for _, op := range p {
		if _, ok := op.(plotpath.MoveTo); ok {
			moves++
		}
	}
	assert.Equal(t, 2, moves)
	assert.Len(t, c.devicePoints([]float64{1, inf, 3}, []float64{nan, 2, 3}), 1)
}

// encodeWithin fails the test if the figure takes longer than d to render.
func encodeWithin(t *testing.T, fig *Figure, d time.Duration) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		done <- fig.Encode(&buf, "png")
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(d):
		t.Fatal("rendering did not return")
		return nil
	}
}

func TestNonFiniteData(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, tc := range []struct {
		name  string
		build func(fig *Figure, ax *Axes) error
		cause error // nil if the directive is accepted
	}{
		{"line inf", func(_ *Figure, ax *Axes) error {
			_, err := ax.Plot([]float64{1, 2, 3}, []float64{1, inf, 3}, Style{Marker: "o"})
			return err
		}, nil},
		{"line nan", func(_ *Figure, ax *Axes) error {
			_, err := ax.Plot([]float64{1, nan, 3}, []float64{1, 2, nan}, Style{})
			return err
		}, nil},
		{"line only nan", func(_ *Figure, ax *Axes) error {
			_, err := ax.Plot([]float64{nan, nan}, []float64{nan, nan}, Style{})
			return err
		}, nil},
		{"scatter inf", func(_ *Figure, ax *Axes) error {
			_, err := ax.Scatter([]float64{1, -inf, 3}, []float64{1, 2, 3}, Style{Label: "points"})
			ax.Legend()
			return err
		}, nil},
		{"bar nan", func(_ *Figure, ax *Axes) error {
			_, err := ax.Bar([]string{"A", "B"}, []float64{nan, 2}, Style{})
			return err
		}, nil},
		{"bar inf", func(_ *Figure, ax *Axes) error {
			_, err := ax.Bar([]string{"A", "B"}, []float64{1, inf}, Style{Label: "bars"})
			ax.Legend()
			return err
		}, nil},
		{"hist nan", func(_ *Figure, ax *Axes) error {
			_, err := ax.Hist([]float64{1, nan, 3}, 10, Style{})
			return err
		}, plotter.ErrNaN},
		{"hist inf", func(_ *Figure, ax *Axes) error {
			_, err := ax.Hist([]float64{1, inf, 3}, 10, Style{})
			return err
		}, plotter.ErrInfinity},
		{"pie inf", func(_ *Figure, ax *Axes) error {
			_, err := ax.Pie([]float64{1, inf}, PieOptions{})
			return err
		}, plotter.ErrInfinity},
		{"pie nan", func(_ *Figure, ax *Axes) error {
			_, err := ax.Pie([]float64{nan, 1}, PieOptions{})
			return err
		}, plotter.ErrNaN},
		{"box nan", func(_ *Figure, ax *Axes) error {
			_, err := ax.BoxPlot([][]float64{{1, nan, 3}}, BoxOptions{})
			return err
		}, plotter.ErrNaN},
		{"image inf with colorbar", func(fig *Figure, ax *Axes) error {
			img, err := ax.ImShow([][]float64{{1, inf}, {-inf, nan}}, ImageOptions{})
			if err != nil {
				return err
			}
			_, err = fig.Colorbar(img, ax)
			return err
		}, nil},
		{"image infinite scale", func(_ *Figure, ax *Axes) error {
			_, err := ax.ImShow([][]float64{{1, 2}}, ImageOptions{VMax: inf})
			return err
		}, ErrInvalidStyle},
		{"nan limits", func(_ *Figure, ax *Axes) error {
			ax.SetYLim(nan, 1)
			ax.SetXLim(0, inf)
			_, err := ax.Plot(xs, ys, Style{})
			return err
		}, nil},
	} {
		fig, axes := Subplots(1, 1)
		err := tc.build(fig, axes[0])
		if tc.cause != nil {
			assert.Equal(t, tc.cause, errors.Cause(err), tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		assert.NoError(t, encodeWithin(t, fig, 10*time.Second), tc.name)

		_, x, y := axes[0].view()
		assert.True(t, x.isValid() && y.isValid(), "%s: %v %v", tc.name, x, y)
	}
}

func TestHotColormap(t *testing.T) {
	cm, err := LookupColormap("hot")
	require.NoError(t, err)
	r, g, b, _ := cm.At(0).RGBA()
	assert.Less(t, r+g+b, uint32(3*0x1000), "dark start")
	r, g, b, _ = cm.At(1).RGBA()
	assert.Greater(t, r+g+b, uint32(3*0xf000), "white end")
}
