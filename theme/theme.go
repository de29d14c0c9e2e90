// Package theme holds the default look of the figures,
// and loads overrides from YAML style sheets.
package theme

import (
	"image/color"
	"os"

	"github.com/benoitkugler/okplot/scene"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Theme stores the cosmetic parameters of a figure.
// Lengths are in points (1/72 inch), except the figure size, in inches.
type Theme struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DPI    float64 `yaml:"dpi"`

	FontSize  float64 `yaml:"font_size"`
	TitleSize float64 `yaml:"title_size"`

	LineWidth  float64 `yaml:"line_width"`
	MarkerSize float64 `yaml:"marker_size"`
	AxesWidth  float64 `yaml:"axes_width"`
	TickLength float64 `yaml:"tick_length"`

	Background string   `yaml:"background"`
	Foreground string   `yaml:"foreground"`
	Colors     []string `yaml:"colors"`
	Grid       bool     `yaml:"grid"`
}

// Default returns the stock theme: a 6.4x4.8 inches figure at 100 dpi.
func Default() Theme {
	return Theme{
		Width:      6.4,
		Height:     4.8,
		DPI:        100,
		FontSize:   10,
		TitleSize:  12,
		LineWidth:  1.5,
		MarkerSize: 6,
		AxesWidth:  0.8,
		TickLength: 3.5,
		Background: "white",
		Foreground: "black",
	}
}

// Load reads a YAML style sheet. Fields missing from the file
// keep their default value.
func Load(path string) (Theme, error) {
	th := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, errors.Wrapf(err, "reading style %s", path)
	}
	if err := yaml.Unmarshal(data, &th); err != nil {
		return th, errors.Wrapf(err, "parsing style %s", path)
	}
	if err := th.Validate(); err != nil {
		return th, errors.Wrapf(err, "invalid style %s", path)
	}
	return th, nil
}

// Validate checks the sizes and colors.
func (th Theme) Validate() error {
	if th.Width <= 0 || th.Height <= 0 || th.DPI <= 0 {
		return errors.Errorf("figure size must be positive, got %gx%g at %g dpi", th.Width, th.Height, th.DPI)
	}
	if th.FontSize <= 0 || th.TitleSize <= 0 {
		return errors.New("font sizes must be positive")
	}
	for _, spec := range append([]string{th.Background, th.Foreground}, th.Colors...) {
		if _, err := scene.ParseColor(spec); err != nil {
			return err
		}
	}
	return nil
}

// Px converts a length in points to device pixels.
func (th Theme) Px(pt float64) float64 { return pt * th.DPI / 72 }

// Size returns the figure size in pixels.
func (th Theme) Size() (w, h float64) { return th.Width * th.DPI, th.Height * th.DPI }

// BackgroundColor returns the resolved background, nil meaning transparent.
// An invalid color falls back to white.
func (th Theme) BackgroundColor() color.Color {
	c, err := scene.ParseColor(th.Background)
	if err != nil {
		return color.White
	}
	return c
}

// ForegroundColor returns the color of texts, spines and ticks.
func (th Theme) ForegroundColor() color.Color {
	c, err := scene.ParseColor(th.Foreground)
	if err != nil || c == nil {
		return color.Black
	}
	return c
}

// CycleColor returns the i-th color of the property cycle.
func (th Theme) CycleColor(i int) color.Color {
	if len(th.Colors) != 0 {
		if c, err := scene.ParseColor(th.Colors[i%len(th.Colors)]); err == nil && c != nil {
			return c
		}
	}
	return scene.CycleColor(i)
}
