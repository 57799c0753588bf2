// Package plotutils renders images and histograms to figures so course
// notebooks don't have to touch the plotting library directly. Figures
// are written as PNG to an io.Writer or a file; what "displaying" them
// means is up to the host environment.
package plotutils

import (
	"fmt"
	"image"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DefaultShowWidth  = 10 * vg.Inch
	DefaultShowHeight = 10 * vg.Inch

	DefaultMultiWidth  = 15 * vg.Inch
	DefaultMultiHeight = 5 * vg.Inch
)

// Figure puts a single image on a canvas with the axes hidden. A
// grayscale image draws at its literal 0-255 intensities, so intensity
// comparisons hold across separately rendered figures.
func Figure(img image.Image, title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	b := img.Bounds()
	p.Add(plotter.NewImage(img, 0, 0, float64(b.Dx()), float64(b.Dy())))

	return p
}

// Show renders img as a PNG figure of the default size.
func Show(w io.Writer, img image.Image, title string) error {
	return ShowSize(w, img, title, DefaultShowWidth, DefaultShowHeight)
}

// ShowSize renders img as a PNG figure of the given size.
func ShowSize(w io.Writer, img image.Image, title string, width, height vg.Length) error {
	wt, err := Figure(img, title).WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveFigure renders img and writes the figure to path. The figure
// format comes from the file extension.
func SaveFigure(path string, img image.Image, title string) error {
	return Figure(img, title).Save(DefaultShowWidth, DefaultShowHeight, path)
}

// ShowMultiple renders imgs side by side in one row of sub-canvases.
// When titles is nil or shorter than imgs, missing labels are
// synthesized as "Image 1".."Image N" by position; extra titles are
// ignored. A single image is handled the same as many.
func ShowMultiple(w io.Writer, imgs []image.Image, titles []string) error {
	return ShowMultipleSize(w, imgs, titles, DefaultMultiWidth, DefaultMultiHeight)
}

// ShowMultipleSize is ShowMultiple with an explicit figure size.
func ShowMultipleSize(w io.Writer, imgs []image.Image, titles []string, width, height vg.Length) error {
	if len(imgs) == 0 {
		return fmt.Errorf("no images to show")
	}

	row := make([]*plot.Plot, len(imgs))
	for i, img := range imgs {
		title := fmt.Sprintf("Image %d", i+1)
		if i < len(titles) {
			title = titles[i]
		}
		row[i] = Figure(img, title)
	}

	canvas := vgimg.New(width, height)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(row),
		PadX: vg.Millimeter * 2,
	}

	canvases := plot.Align([][]*plot.Plot{row}, tiles, draw.New(canvas))
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	_, err := png.WriteTo(w)
	return err
}

// SaveMultiple is ShowMultiple writing the PNG figure to path.
func SaveMultiple(path string, imgs []image.Image, titles []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if err := ShowMultiple(f, imgs, titles); err != nil {
		f.Close()
		return err
	}

	// a short write can surface only at close
	return f.Close()
}
