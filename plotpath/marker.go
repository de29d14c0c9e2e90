package plotpath

import "fmt"

// Marker is the shape drawn at each data point.
type Marker uint8

const (
	NoMarker Marker = iota
	Point           // "."
	Circle          // "o"
	Cross           // "x"
	Plus            // "+"
	Square          // "s"
	TriangleUp      // "^"
	TriangleDown    // "v"
	Diamond         // "D"
)

var markerCodes = map[string]Marker{
	"":  NoMarker,
	".": Point,
	"o": Circle,
	"x": Cross,
	"+": Plus,
	"s": Square,
	"^": TriangleUp,
	"v": TriangleDown,
	"D": Diamond,
}

// ParseMarker returns the marker for the given code, such as "o" or "x".
func ParseMarker(code string) (Marker, error) {
	m, ok := markerCodes[code]
	if !ok {
		return NoMarker, fmt.Errorf("unsupported marker %q", code)
	}
	return m, nil
}

func (m Marker) String() string {
	for code, v := range markerCodes {
		if v == m {
			return code
		}
	}
	return "<unknown Marker>"
}

// IsLine returns true for markers made of strokes only,
// which can't be filled.
func (m Marker) IsLine() bool {
	return m == Cross || m == Plus
}

// AddMarker adds the marker centered on (x, y), fitting in a square
// of side size.
func (p *Path) AddMarker(m Marker, x, y, size float64) {
	h := size / 2
	switch m {
	case Point:
		p.AddCircle(x, y, h/2)
	case Circle:
		p.AddCircle(x, y, h)
	case Cross:
		p.AddPolyline(x-h, y-h, x+h, y+h)
		p.AddPolyline(x-h, y+h, x+h, y-h)
	case Plus:
		p.AddPolyline(x-h, y, x+h, y)
		p.AddPolyline(x, y-h, x, y+h)
	case Square:
		p.AddRect(x-h, y-h, x+h, y+h)
	case TriangleUp:
		p.AddPolygon(x, y-h, x+h, y+h, x-h, y+h)
	case TriangleDown:
		p.AddPolygon(x, y+h, x+h, y-h, x-h, y-h)
	case Diamond:
		p.AddPolygon(x, y-h, x+h, y, x, y+h, x-h, y)
	}
}
