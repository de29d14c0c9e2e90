package scene

import (
	"image/color"
	"testing"

	"github.com/benoitkugler/okplot/plotpath"
	"golang.org/x/image/math/fixed"
)

// records the calls made by Scene.Draw
type recorder struct {
	fills, strokes, texts int
	lastWidth             fixed.Int26_6
	points                int
}

type recDrawer struct {
	r      *recorder
	stroke bool
}

func (d recDrawer) Clear()                              {}
func (d recDrawer) Start(a fixed.Point26_6)             { d.r.points++ }
func (d recDrawer) Line(b fixed.Point26_6)              { d.r.points++ }
func (d recDrawer) QuadBezier(b, c fixed.Point26_6)     { d.r.points++ }
func (d recDrawer) CubeBezier(b, c, e fixed.Point26_6)  { d.r.points++ }
func (d recDrawer) Stop(closeLoop bool)                 {}
func (d recDrawer) SetColor(c color.Color, o float64)   {}
func (d recDrawer) SetWinding(useNonZeroWinding bool)   {}
func (d recDrawer) SetStrokeOptions(opts StrokeOptions) { d.r.lastWidth = opts.LineWidth }
func (d recDrawer) Draw() {
	if d.stroke {
		d.r.strokes++
	} else {
		d.r.fills++
	}
}

func (r *recorder) SetupDrawers(willFill, willStroke bool) (f Filler, s Stroker) {
	if willFill {
		f = recDrawer{r: r}
	}
	if willStroke {
		s = recDrawer{r: r, stroke: true}
	}
	return f, s
}

func (r *recorder) DrawText(t Text) { r.texts++ }

func TestDrawOrder(t *testing.T) {
	var p plotpath.Path
	p.AddRect(10, 10, 20, 20)

	sc := New(100, 50, color.White)
	sc.Add(
		Shape{Path: p, Style: Style{Fill: color.Black}},
		Shape{Path: p, Style: Style{Stroke: color.Black, LineWidth: 1.5}},
		Shape{Path: p, Style: Style{Fill: color.White, Stroke: color.Black, LineWidth: 1}},
		Shape{Path: p, Style: Style{Stroke: color.Black}}, // zero width: nothing drawn
		Text{Content: "title", Size: 12},
		Text{Size: 12}, // empty text is skipped
	)
	var r recorder
	sc.Draw(&r)
	if r.fills != 3 { // background + 2
		t.Errorf("expected 3 fills, got %d", r.fills)
	}
	if r.strokes != 2 {
		t.Errorf("expected 2 strokes, got %d", r.strokes)
	}
	if r.texts != 1 {
		t.Errorf("expected 1 text, got %d", r.texts)
	}
	if r.lastWidth != fixed.I(1) {
		t.Errorf("unexpected line width %v", r.lastWidth)
	}
}

func TestParseColor(t *testing.T) {
	for spec, exp := range map[string]color.NRGBA{
		"red":       {0xff, 0, 0, 0xff},
		"green":     {0, 0x80, 0, 0xff},
		"#00f":      {0, 0, 0xff, 0xff},
		"#123456":   {0x12, 0x34, 0x56, 0xff},
		"#12345680": {0x12, 0x34, 0x56, 0x80},
		"C0":        {0x1f, 0x77, 0xb4, 0xff},
		" Orange ":  {0xff, 0xa5, 0, 0xff},
	} {
		c, err := ParseColor(spec)
		if err != nil {
			t.Fatal(err)
		}
		if got := ToNRGBA(c); got != exp {
			t.Errorf("color %q: expected %v, got %v", spec, exp, got)
		}
	}
	if c, err := ParseColor("none"); err != nil || c != nil {
		t.Errorf("none should give a nil color, got %v %v", c, err)
	}
	for _, bad := range []string{"notacolor", "#12", "#zzzzzz", "C"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestMeasureText(t *testing.T) {
	w1 := MeasureText("Histogram", 12)
	w2 := MeasureText("Histogram", 24)
	if w1 <= 0 {
		t.Fatalf("expected positive width, got %f", w1)
	}
	if w2 < 1.9*w1 || w2 > 2.1*w1 {
		t.Errorf("width should scale with size: %f vs %f", w1, w2)
	}
	asc, desc := FontMetrics(12)
	if asc <= 0 || desc <= 0 || asc+desc != LineHeight(12) {
		t.Errorf("unexpected metrics %f %f", asc, desc)
	}
}

func TestTextOffset(t *testing.T) {
	txt := Text{Content: "abc", Size: 10, HAlign: Right, VAlign: Top}
	dx, dy := txt.Offset()
	asc, _ := FontMetrics(10)
	if dx != -MeasureText("abc", 10) || dy != asc {
		t.Errorf("unexpected offset (%f, %f)", dx, dy)
	}
}
