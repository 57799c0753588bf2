package imgutils

import (
	"image"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/floats"
)

func TestHistogramCounts(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 2))
	g.Pix = []uint8{0, 0, 10, 10, 10, 128, 255, 255}

	counts, edges := Histogram(g, 256)
	test.That(t, len(counts), test.ShouldEqual, 256)
	test.That(t, len(edges), test.ShouldEqual, 257)
	test.That(t, edges[0], test.ShouldEqual, 0.0)
	test.That(t, edges[256], test.ShouldEqual, 256.0)

	test.That(t, counts[0], test.ShouldEqual, 2.0)
	test.That(t, counts[10], test.ShouldEqual, 3.0)
	test.That(t, counts[128], test.ShouldEqual, 1.0)
	test.That(t, counts[255], test.ShouldEqual, 2.0)

	// every pixel lands in exactly one bucket
	test.That(t, floats.Sum(counts), test.ShouldEqual, 8.0)
}

func TestHistogramColor(t *testing.T) {
	c := testColorImage()

	counts, _ := Histogram(c, 16)
	test.That(t, len(counts), test.ShouldEqual, 16)
	test.That(t, floats.Sum(counts), test.ShouldEqual, float64(len(Samples(c))))
}

func TestNormalize(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.Pix = []uint8{50, 75, 75, 100}

	out, ok := Normalize(g).(*image.Gray)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, out.Pix, test.ShouldResemble, []uint8{0, 127, 127, 255})

	// input untouched
	test.That(t, g.Pix, test.ShouldResemble, []uint8{50, 75, 75, 100})

	s := GetStats(out)
	test.That(t, s.Min, test.ShouldEqual, 0.0)
	test.That(t, s.Max, test.ShouldEqual, 255.0)
}

func TestNormalizeFullRange(t *testing.T) {
	// the max sample has to land exactly on 255 for every spread, not
	// round down to 254
	for _, max := range []uint8{1, 7, 100, 127, 200, 254} {
		g := image.NewGray(image.Rect(0, 0, 2, 1))
		g.Pix = []uint8{0, max}

		out := Normalize(g).(*image.Gray)
		test.That(t, out.Pix, test.ShouldResemble, []uint8{0, 255})
	}

	for _, min := range []uint8{3, 50, 130} {
		g := image.NewGray(image.Rect(0, 0, 2, 1))
		g.Pix = []uint8{min, 233}

		s := GetStats(Normalize(g))
		test.That(t, s.Min, test.ShouldEqual, 0.0)
		test.That(t, s.Max, test.ShouldEqual, 255.0)
	}
}

func TestNormalizeConstant(t *testing.T) {
	// a constant image has no spread to stretch; documented behavior is
	// an all-zero result
	g := image.NewGray(image.Rect(0, 0, 2, 2))

	out := Normalize(g).(*image.Gray)
	test.That(t, out.Pix, test.ShouldResemble, []uint8{0, 0, 0, 0})

	g.Pix = []uint8{9, 9, 9, 9}
	out = Normalize(g).(*image.Gray)
	test.That(t, out.Pix, test.ShouldResemble, []uint8{0, 0, 0, 0})
}

func TestNormalizeColor(t *testing.T) {
	c := testColorImage()

	out, ok := Normalize(c).(*image.NRGBA)
	test.That(t, ok, test.ShouldBeTrue)

	s := GetStats(out)
	test.That(t, s.Min, test.ShouldEqual, 0.0)
	test.That(t, s.Max, test.ShouldEqual, 255.0)

	// alpha stays opaque
	for i := 3; i < len(out.Pix); i += 4 {
		test.That(t, out.Pix[i], test.ShouldEqual, uint8(255))
	}
}
