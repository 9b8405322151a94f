// Package plots renders training history to image files.
package plots

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	clinicalnets "github.com/AlperHuseyn/clinical-nets"
)

// History renders the named metric's training and validation series as an
// epochs-versus-metric line chart and saves it to path, in the image format
// matching the file extension (".jpg" for the pipeline programs). metric is
// "loss" or an accuracy name such as "categorical_accuracy" and is used
// verbatim in the title, axis and legend text.
func History(h *clinicalnets.History, metric, path string) error {
	if h == nil || h.Len() == 0 {
		return errors.New("Can't plot an empty history")
	}

	var train, val []float64
	switch {
	case metric == "loss":
		train, val = h.Loss, h.ValLoss
	case strings.Contains(metric, "accuracy"):
		train, val = h.Acc, h.ValAcc
	default:
		return errors.Errorf("Unknown metric %q (want \"loss\" or an accuracy)", metric)
	}

	p := plot.New()
	p.Title.Text = "Epochs vs " + metric
	p.X.Label.Text = "Epochs"
	p.Y.Label.Text = metric
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	line, err := plotter.NewLine(series(h.Epochs, train))
	if err != nil {
		return errors.Wrapf(err, "Couldn't build the training %s line", metric)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	p.Legend.Add("training "+metric, line)

	if len(val) > 0 {
		vline, err := plotter.NewLine(series(h.Epochs, val))
		if err != nil {
			return errors.Wrapf(err, "Couldn't build the validation %s line", metric)
		}
		vline.LineStyle.Width = vg.Points(2)
		vline.LineStyle.Color = color.RGBA{R: 255, G: 165, A: 255}
		p.Add(vline)
		p.Legend.Add("validation "+metric, vline)
	}

	if err := p.Save(15*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "Couldn't save plot to %q", path)
	}

	return nil
}

func series(epochs []int, values []float64) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i := range values {
		xys[i] = plotter.XY{X: float64(epochs[i]), Y: values[i]}
	}
	return xys
}
