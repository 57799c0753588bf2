package imgutils

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram bins the flattened samples of img into bins equal-width
// buckets over [0, 256). It returns the per-bucket counts and the
// bins+1 bucket edges. Counts always sum to the number of samples.
func Histogram(img image.Image, bins int) ([]float64, []float64) {
	samples := Samples(img)
	sort.Float64s(samples)

	edges := make([]float64, bins+1)
	floats.Span(edges, 0, 256)

	counts := stat.Histogram(nil, edges, samples, nil)
	return counts, edges
}

// Normalize rescales img linearly so its samples span the full [0, 255]
// range, returning a new image of the same kind and geometry. A
// constant-valued input has no spread to stretch; it comes back as an
// all-zero image.
func Normalize(img image.Image) image.Image {
	samples := Samples(img)
	min := floats.Min(samples)
	max := floats.Max(samples)
	span := max - min

	// divide before multiplying so the max sample maps to exactly 1.0
	// and then 255; a precomputed 255/span factor rounds down for many
	// (min, max) pairs
	norm := func(s float64) uint8 {
		if span == 0 {
			return 0
		}
		return uint8((s - min) / span * 255)
	}

	if g, ok := img.(*image.Gray); ok {
		bounds := g.Bounds()
		out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		for i, s := range samples {
			out.Pix[i] = norm(s)
		}
		return out
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for i := 0; i*3 < len(samples); i++ {
		out.Pix[i*4] = norm(samples[i*3])
		out.Pix[i*4+1] = norm(samples[i*3+1])
		out.Pix[i*4+2] = norm(samples[i*3+2])
		out.Pix[i*4+3] = 255
	}
	return out
}
