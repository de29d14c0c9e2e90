// Package dataset builds the sample data of the examples:
// literal sequences and pseudo-random samples.
package dataset

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// Range returns [start, start+1, ..., end].
func Range(start, end int) []float64 {
	if end < start {
		return nil
	}
	out := make([]float64, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, float64(i))
	}
	return out
}

// Normal returns n samples of the standard normal distribution.
func Normal(src rand.Source, n int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// NormalMatrix returns a rows x cols matrix of standard normal samples,
// filled row by row.
func NormalMatrix(src rand.Source, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = Normal(src, cols)
	}
	return out
}

// UniformMatrix returns a rows x cols matrix of samples uniform in [0, 1).
func UniformMatrix(src rand.Source, rows, cols int) [][]float64 {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: src}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = dist.Rand()
		}
	}
	return out
}

// Columns transposes a row-major matrix into one slice per column.
// Every row must have the same length.
func Columns(m [][]float64) ([][]float64, error) {
	if len(m) == 0 {
		return nil, nil
	}
	cols := len(m[0])
	out := make([][]float64, cols)
	for j := range out {
		out[j] = make([]float64, len(m))
	}
	for i, row := range m {
		if len(row) != cols {
			return nil, errors.Errorf("row %d has %d values, expected %d", i, len(row), cols)
		}
		for j, v := range row {
			out[j][i] = v
		}
	}
	return out, nil
}

// Summary gathers descriptive statistics of a sample.
type Summary struct {
	Count                  int
	Mean, StdDev, Min, Max float64
	Median, Sum            float64
}

// Describe computes the summary of a non empty sample.
func Describe(values []float64) (Summary, error) {
	data := stats.Float64Data(values)
	if data.Len() == 0 {
		return Summary{}, errors.New("empty sample")
	}
	var (
		s   = Summary{Count: data.Len()}
		err error
	)
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, err
	}
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	if s.Max, err = data.Max(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}
	if s.Sum, err = data.Sum(); err != nil {
		return s, err
	}
	return s, nil
}

// Flatten concatenates the rows of a matrix.
func Flatten(m [][]float64) []float64 {
	var out []float64
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}
