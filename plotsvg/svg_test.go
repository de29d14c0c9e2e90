package plotsvg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/benoitkugler/okplot/plotpath"
	"github.com/benoitkugler/okplot/scene"
)

func testScene() *scene.Scene {
	sc := scene.New(100, 60, color.White)
	var box plotpath.Path
	box.AddRect(10, 10, 40, 40)
	var line plotpath.Path
	line.AddPolyline(50, 50, 90, 10)
	sc.Add(
		scene.Shape{Path: box, Style: scene.Style{Fill: color.RGBA{0, 0x80, 0, 0xff}, Stroke: color.Black, LineWidth: 1}},
		scene.Shape{Path: line, Style: scene.Style{Stroke: color.RGBA{0xff, 0, 0, 0xff}, LineWidth: 1.5,
			Dash: scene.DashOptions{Dash: []float64{5.5, 2.4}}}},
		scene.Text{X: 50, Y: 5, Content: "A & B", Size: 12, Color: color.Black, HAlign: scene.Center, VAlign: scene.Top},
		scene.Text{X: 5, Y: 30, Content: "y-axis", Size: 10, Vertical: true},
	)
	return sc
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testScene()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// background, box, line
	if n := strings.Count(out, "<path"); n != 3 {
		t.Errorf("expected 3 paths, got %d", n)
	}
	for _, exp := range []string{
		"fill:#008000;stroke:#000000",
		"stroke-dasharray:5.5,2.4",
		"text-anchor:middle",
		"rotate(-90)",
		"A &amp; B",
	} {
		if !strings.Contains(out, exp) {
			t.Errorf("missing %q in output", exp)
		}
	}

	// output must be well formed
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid xml: %s", err)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeError(t *testing.T) {
	if err := Encode(failingWriter{}, testScene()); err == nil {
		t.Error("expected write error")
	}
}
