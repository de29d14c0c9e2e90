package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	th := Default()
	require.NoError(t, th.Validate())
	w, h := th.Size()
	assert.InDelta(t, 640, w, 1e-9)
	assert.InDelta(t, 480, h, 1e-9)
	assert.InDelta(t, 100./72*1.5, th.Px(1.5), 1e-9)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, th.BackgroundColor())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	err := os.WriteFile(path, []byte("dpi: 50\ncolors: [\"#ff0000\", navy]\ngrid: true\n"), 0o644)
	require.NoError(t, err)

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50., th.DPI)
	assert.True(t, th.Grid)
	// untouched fields keep their default
	assert.Equal(t, 6.4, th.Width)
	assert.Equal(t, 10., th.FontSize)

	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, th.CycleColor(0))
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xff}, th.CycleColor(3))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colors: [notacolor]\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("width: -1\n"), 0o644))
	_, err = Load(negative)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("dpi: [1, 2"), 0o644))
	_, err = Load(garbage)
	assert.Error(t, err)
}

func TestBackgroundFallback(t *testing.T) {
	th := Default()
	th.Background = "not a color"
	assert.Equal(t, color.White, th.BackgroundColor())

	th.Background = "none"
	assert.Nil(t, th.BackgroundColor())
}
