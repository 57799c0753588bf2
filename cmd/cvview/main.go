package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	termimg "github.com/blacktop/go-termimg"

	"go.viam.com/rdk/logging"

	"github.com/erh/cvutils"
	"github.com/erh/cvutils/imgutils"
	"github.com/erh/cvutils/plotutils"
)

func main() {
	err := realMain()
	if err != nil {
		panic(err)
	}
}

func realMain() error {
	logger := logging.NewLogger("cvview")
	ctx := context.Background()

	cmd := flag.String("cmd", "", "command: info, gray, normalize, show, multi, hist, histterm, download")
	in := flag.String("in", "", "input file, comma separated for multi")
	out := flag.String("out", "", "output file")
	title := flag.String("title", "", "figure title")
	titles := flag.String("titles", "", "comma separated titles for multi")
	bins := flag.Int("bins", 256, "histogram buckets")
	host := flag.String("host", "", "hostname")
	cameraName := flag.String("camera", "", "camera to use")

	flag.Parse()

	if *cmd == "" {
		return fmt.Errorf("need a cmd")
	}

	if *cmd == "info" {
		img, err := imgutils.Load(*in)
		if err != nil {
			return err
		}
		imgutils.Fprint(os.Stdout, filepath.Base(*in), img)
		return nil
	}

	if *cmd == "gray" {
		img, err := imgutils.Load(*in)
		if err != nil {
			return err
		}
		if *out == "" {
			return fmt.Errorf("need an 'out'")
		}
		return imgutils.Save(*out, imgutils.ToGrayscale(img))
	}

	if *cmd == "normalize" {
		img, err := imgutils.Load(*in)
		if err != nil {
			return err
		}
		if *out == "" {
			return fmt.Errorf("need an 'out'")
		}
		return imgutils.Save(*out, imgutils.Normalize(img))
	}

	if *cmd == "show" {
		img, err := imgutils.Load(*in)
		if err != nil {
			return err
		}

		fn := *out
		if fn == "" {
			fn = filepath.Join(os.TempDir(), "cvview-show.png")
		}

		err = plotutils.SaveFigure(fn, img, *title)
		if err != nil {
			return err
		}

		return present(fn, logger)
	}

	if *cmd == "multi" {
		imgs := []image.Image{}
		for _, fn := range strings.Split(*in, ",") {
			img, err := imgutils.Load(fn)
			if err != nil {
				return err
			}
			imgs = append(imgs, img)
		}

		names := []string{}
		if *titles != "" {
			names = strings.Split(*titles, ",")
		}

		fn := *out
		if fn == "" {
			fn = filepath.Join(os.TempDir(), "cvview-multi.png")
		}

		err := plotutils.SaveMultiple(fn, imgs, names)
		if err != nil {
			return err
		}

		return present(fn, logger)
	}

	if *cmd == "hist" {
		img, err := imgutils.Load(*in)
		if err != nil {
			return err
		}

		fn := *out
		if fn == "" {
			fn = filepath.Join(os.TempDir(), "cvview-hist.png")
		}

		err = plotutils.SaveHistogram(fn, img, *bins, *title)
		if err != nil {
			return err
		}

		return present(fn, logger)
	}

	if *cmd == "histterm" {
		img, err := imgutils.Load(*in)
		if err != nil {
			return err
		}
		return plotutils.FprintHistogram(os.Stdout, img, *bins)
	}

	if *cmd == "download" {
		if *out == "" {
			return fmt.Errorf("need an 'out'")
		}

		machine, err := cvutils.ConnectToHostFromCLIToken(ctx, *host, logger)
		if err != nil {
			return err
		}
		defer machine.Close(ctx)

		img, err := cvutils.GetImageFromCamera(ctx, machine, *cameraName)
		if err != nil {
			return err
		}

		err = imgutils.Save(*out, img)
		if err != nil {
			return err
		}

		imgutils.Fprint(os.Stdout, *cameraName, img)
		return nil
	}

	return fmt.Errorf("invalid command [%s]", *cmd)
}

// present draws the figure inline when the terminal supports an image
// protocol, otherwise just says where it was written.
func present(fn string, logger logging.Logger) error {
	err := termimg.PrintFile(fn)
	if err != nil {
		logger.Infof("wrote %s", fn)
	}
	return nil
}
