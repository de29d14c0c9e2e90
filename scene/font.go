package scene

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// every driver uses the same font, so that
// the layout computed from these metrics is valid everywhere

var (
	parsedFont *opentype.Font

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

func init() {
	var err error
	parsedFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font, should not happen
	}
}

// FontBytes returns the TrueType data of the font used for every text.
func FontBytes() []byte { return goregular.TTF }

// Face returns the font face for the given size, in device units.
// Faces are cached, and must not be modified.
func Face(size float64) font.Face {
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err) // only invalid options trigger an error
	}
	faces[size] = f
	return f
}

// MeasureText returns the advance width of s.
func MeasureText(s string, size float64) float64 {
	face := Face(size)
	facesMu.Lock()
	defer facesMu.Unlock()
	return float64(font.MeasureString(face, s)) / 64
}

// FontMetrics returns the ascent and the descent (as a positive value)
// of the font at the given size.
func FontMetrics(size float64) (ascent, descent float64) {
	face := Face(size)
	facesMu.Lock()
	defer facesMu.Unlock()
	m := face.Metrics()
	return float64(m.Ascent) / 64, float64(m.Descent) / 64
}

// LineHeight returns ascent + descent.
func LineHeight(size float64) float64 {
	a, d := FontMetrics(size)
	return a + d
}
