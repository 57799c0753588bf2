package imgutils

import (
	"bytes"
	"image"
	"math"
	"testing"

	"go.viam.com/test"
)

func TestShape(t *testing.T) {
	test.That(t, Shape(image.NewGray(image.Rect(0, 0, 4, 3))), test.ShouldResemble, []int{3, 4})
	test.That(t, Shape(image.NewNRGBA(image.Rect(0, 0, 4, 3))), test.ShouldResemble, []int{3, 4, 3})
}

func TestSamples(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.Pix = []uint8{0, 2, 2, 4}
	test.That(t, Samples(g), test.ShouldResemble, []float64{0, 2, 2, 4})

	c := testColorImage()
	samples := Samples(c)
	test.That(t, len(samples), test.ShouldEqual, 3*2*3)
	test.That(t, samples[0], test.ShouldEqual, 10.0)
	test.That(t, samples[1], test.ShouldEqual, 20.0)
	test.That(t, samples[2], test.ShouldEqual, 30.0)
}

func TestGetStats(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.Pix = []uint8{0, 2, 2, 4}

	s := GetStats(g)
	test.That(t, s.Shape, test.ShouldResemble, []int{2, 2})
	test.That(t, s.DType, test.ShouldEqual, "uint8")
	test.That(t, s.Min, test.ShouldEqual, 0.0)
	test.That(t, s.Max, test.ShouldEqual, 4.0)
	test.That(t, s.Mean, test.ShouldEqual, 2.0)
	test.That(t, s.StdDev, test.ShouldAlmostEqual, math.Sqrt(2), 1e-9)
}

func TestFprint(t *testing.T) {
	buf := &bytes.Buffer{}
	Fprint(buf, "lenna", image.NewGray(image.Rect(0, 0, 2, 2)))

	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "lenna Information:")
	test.That(t, out, test.ShouldContainSubstring, "Shape: [2 2]")
	test.That(t, out, test.ShouldContainSubstring, "Data type: uint8")
	test.That(t, out, test.ShouldContainSubstring, "Mean value: 0.00")
}
