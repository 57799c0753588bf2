package plotutils

import (
	"image"
	"image/color"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/erh/cvutils/imgutils"
)

// HistogramFigure builds a frequency chart of img's pixel intensities
// over [0, 256) with bins equal-width buckets. Bars sit at their real
// intensity range on the x axis, so the labels stay truthful for any
// bucket count.
func HistogramFigure(img image.Image, bins int, title string) (*plot.Plot, error) {
	counts, edges := imgutils.Histogram(img, bins)

	hbins := make([]plotter.HistogramBin, len(counts))
	for i, c := range counts {
		hbins[i] = plotter.HistogramBin{Min: edges[i], Max: edges[i+1], Weight: c}
	}

	hist := &plotter.Histogram{
		Bins:      hbins,
		FillColor: color.Gray{Y: 128},
		LineStyle: plotter.DefaultLineStyle,
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Pixel Value"
	p.Y.Label.Text = "Frequency"
	p.Add(hist)

	return p, nil
}

// ShowHistogram renders the intensity histogram of img as a PNG figure.
func ShowHistogram(w io.Writer, img image.Image, bins int, title string) error {
	p, err := HistogramFigure(img, bins, title)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveHistogram writes the intensity histogram figure of img to path.
func SaveHistogram(path string, img image.Image, bins int, title string) error {
	p, err := HistogramFigure(img, bins, title)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}

// FprintHistogram writes a text histogram of img's pixel intensities to
// w, for shells with no way to present a figure.
func FprintHistogram(w io.Writer, img image.Image, bins int) error {
	hist := histogram.Hist(bins, imgutils.Samples(img))
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
