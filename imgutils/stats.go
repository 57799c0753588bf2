package imgutils

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the pixel samples of an image.
type Stats struct {
	Shape  []int // (height, width) or (height, width, 3)
	DType  string
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Shape returns the array shape of img: (height, width) for grayscale,
// (height, width, 3) for color.
func Shape(img image.Image) []int {
	b := img.Bounds()
	if _, ok := img.(*image.Gray); ok {
		return []int{b.Dy(), b.Dx()}
	}
	return []int{b.Dy(), b.Dx(), 3}
}

// Samples flattens img into its 8-bit samples, row-major with channels
// interleaved. Grayscale yields one sample per pixel, color three;
// alpha is never included.
func Samples(img image.Image) []float64 {
	bounds := img.Bounds()

	if g, ok := img.(*image.Gray); ok {
		out := make([]float64, 0, bounds.Dx()*bounds.Dy())
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				out = append(out, float64(g.GrayAt(x, y).Y))
			}
		}
		return out
	}

	out := make([]float64, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out = append(out, float64(c.R), float64(c.G), float64(c.B))
		}
	}
	return out
}

// GetStats computes summary statistics over all samples of img. The
// standard deviation is the population one, matching what numeric
// array libraries report by default.
func GetStats(img image.Image) Stats {
	samples := Samples(img)

	return Stats{
		Shape:  Shape(img),
		DType:  "uint8",
		Min:    floats.Min(samples),
		Max:    floats.Max(samples),
		Mean:   stat.Mean(samples, nil),
		StdDev: stat.PopStdDev(samples, nil),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("shape=%v dtype=%s min=%g max=%g mean=%.2f std=%.2f",
		s.Shape, s.DType, s.Min, s.Max, s.Mean, s.StdDev)
}

// Fprint writes a human-readable report of img's statistics to w.
func Fprint(w io.Writer, name string, img image.Image) {
	s := GetStats(img)
	fmt.Fprintf(w, "%s Information:\n", name)
	fmt.Fprintf(w, "  Shape: %v\n", s.Shape)
	fmt.Fprintf(w, "  Data type: %s\n", s.DType)
	fmt.Fprintf(w, "  Min value: %g\n", s.Min)
	fmt.Fprintf(w, "  Max value: %g\n", s.Max)
	fmt.Fprintf(w, "  Mean value: %.2f\n", s.Mean)
	fmt.Fprintf(w, "  Std deviation: %.2f\n", s.StdDev)
}
