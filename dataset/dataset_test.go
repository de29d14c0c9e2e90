package dataset

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSamples(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a, b := NewSource(42), NewSource(42)

		Convey("Normal samples are identical and have the requested length", func() {
			sa, sb := Normal(a, 1000), Normal(b, 1000)
			So(sa, ShouldHaveLength, 1000)
			So(sa, ShouldResemble, sb)

			Convey("And look like a standard normal sample", func() {
				sum, err := Describe(sa)
				So(err, ShouldBeNil)
				So(sum.Count, ShouldEqual, 1000)
				So(math.Abs(sum.Mean), ShouldBeLessThan, 0.2)
				So(sum.StdDev, ShouldBeBetween, 0.8, 1.2)
				So(sum.Min, ShouldBeLessThan, sum.Median)
				So(sum.Median, ShouldBeLessThan, sum.Max)
			})
		})

		Convey("Matrices have the requested shape", func() {
			m := NormalMatrix(a, 100, 5)
			So(m, ShouldHaveLength, 100)
			for _, row := range m {
				So(row, ShouldHaveLength, 5)
			}

			u := UniformMatrix(b, 10, 10)
			So(u, ShouldHaveLength, 10)
			for _, v := range Flatten(u) {
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 1)
			}
		})
	})
}

func TestColumns(t *testing.T) {
	Convey("Columns transposes a matrix", t, func() {
		cols, err := Columns([][]float64{{1, 2, 3}, {4, 5, 6}})
		So(err, ShouldBeNil)
		So(cols, ShouldResemble, [][]float64{{1, 4}, {2, 5}, {3, 6}})

		Convey("And rejects ragged rows", func() {
			_, err := Columns([][]float64{{1, 2}, {3}})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRange(t *testing.T) {
	Convey("Range includes both ends", t, func() {
		So(Range(1, 5), ShouldResemble, []float64{1, 2, 3, 4, 5})
		So(Range(3, 2), ShouldBeEmpty)
	})

	Convey("Describe fails on an empty sample", t, func() {
		_, err := Describe(nil)
		So(err, ShouldNotBeNil)
	})
}
