// Package imgutils has image read/write, conversion, and inspection
// helpers for course notebooks and exercises.
package imgutils

import (
	"fmt"
	"image"
	"image/draw"

	"go.viam.com/rdk/rimage"
)

// Load reads and decodes the image file at path, always returning a
// three-channel image. The format is detected by the codec, not by this
// package. Pixels are in the usual red-green-blue order regardless of
// how they were stored.
func Load(path string) (*image.NRGBA, error) {
	img, err := rimage.ReadImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read image %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// LoadGrayscale reads the image file at path as single-channel.
func LoadGrayscale(path string) (*image.Gray, error) {
	img, err := rimage.ReadImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read image %s: %w", path, err)
	}
	gray, ok := ToGrayscale(img).(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("could not convert %s to grayscale", path)
	}
	return gray, nil
}

// Save encodes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	err := rimage.WriteImageToFile(path, img)
	if err != nil {
		return fmt.Errorf("could not write image %s: %w", path, err)
	}
	return nil
}

// ToNRGBA returns img as an *image.NRGBA whose Pix buffer is tightly
// packed at the origin, so callers can index it linearly. Sub-image
// views have strided rows and a non-zero origin; those get copied.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok &&
		b.Min == (image.Point{}) &&
		n.Stride == 4*b.Dx() &&
		len(n.Pix) == 4*b.Dx()*b.Dy() {
		return n
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
