package imgutils

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// ToGrayscale converts img to single-channel luminance. If img is
// already grayscale it is returned as-is, not copied.
func ToGrayscale(img image.Image) image.Image {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			grayColor := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.SetGray(x-bounds.Min.X, y-bounds.Min.Y, grayColor)
		}
	}

	return out
}

// SwapRedBlue reorders the red and blue channels of a color image.
// Applying it twice gives back the original pixels.
func SwapRedBlue(img image.Image) *image.NRGBA {
	in := ToNRGBA(img)
	out := image.NewNRGBA(in.Bounds())

	for i := 0; i+3 < len(in.Pix); i += 4 {
		out.Pix[i] = in.Pix[i+2]
		out.Pix[i+1] = in.Pix[i+1]
		out.Pix[i+2] = in.Pix[i]
		out.Pix[i+3] = in.Pix[i+3]
	}

	return out
}

// FromBGR builds a color image from a raw interleaved blue-green-red
// buffer, the layout OpenCV and many camera drivers hand out.
func FromBGR(data []byte, width, height int) (*image.NRGBA, error) {
	if len(data) != width*height*3 {
		return nil, fmt.Errorf("bgr buffer is %d bytes, want %d for %dx%d", len(data), width*height*3, width, height)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		out.Pix[i*4] = data[i*3+2]
		out.Pix[i*4+1] = data[i*3+1]
		out.Pix[i*4+2] = data[i*3]
		out.Pix[i*4+3] = 255
	}
	return out, nil
}

// ToBGR flattens img into a raw interleaved blue-green-red buffer.
func ToBGR(img image.Image) []byte {
	in := ToNRGBA(img)
	b := in.Bounds()

	out := make([]byte, b.Dx()*b.Dy()*3)
	for i := 0; i < b.Dx()*b.Dy(); i++ {
		out[i*3] = in.Pix[i*4+2]
		out[i*3+1] = in.Pix[i*4+1]
		out[i*3+2] = in.Pix[i*4]
	}
	return out
}

// ColorDistance is the euclidean distance between two colors in RGB space.
func ColorDistance(c1, c2 color.Color) float64 {
	r1, g1, b1, _ := c1.RGBA()
	r2, g2, b2, _ := c2.RGBA()

	// RGBA() returns uint32 in range [0, 65535], convert to [0, 255]
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	dr := int(r1) - int(r2)
	dg := int(g1) - int(g2)
	db := int(b1) - int(b2)

	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}
