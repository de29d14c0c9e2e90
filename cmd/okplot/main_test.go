package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/benoitkugler/okplot/examples"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, log.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, log.ErrorLevel, parseLogLevel("verbose"))
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, []examples.Result{
		{Name: "simple", Path: "1_simple_plot.png", Size: 1234},
		{Name: "pie", Path: "", Err: errors.New("disk full")},
	})
	out := buf.String()
	assert.Contains(t, out, "1_simple_plot.png")
	assert.Contains(t, out, "1234")
	assert.Contains(t, out, "failed")
}

func TestArgs(t *testing.T) {
	_, err := app.Parse([]string{"--format", "svg", "--seed", "7", "pie", "box"})
	assert.NoError(t, err)
	assert.Equal(t, "svg", *format)
	assert.Equal(t, uint64(7), *seed)
	assert.Equal(t, []string{"pie", "box"}, *names)

	_, err = app.Parse([]string{"--format", "bmp"})
	assert.Error(t, err)
}
