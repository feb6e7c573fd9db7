// Package plot renders training results with gonum/plot: the fitted line of
// a single-feature model over its data, and the per-epoch loss curve.
//
// The output format follows the file extension (.png, .svg or .pdf).
package plot

import (
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/goneuron/core/model"
	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"github.com/YuminosukeSato/goneuron/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

var (
	pointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// FitLine draws the samples of a single-feature dataset (X is 1 × n, Y is
// 1 × n) as a scatter and the predictor's output as a line spanning the
// observed x range.
func FitLine(path, title string, X, Y mat.Matrix, predictor model.Predictor) error {
	if err := checkFormat("FitLine", path); err != nil {
		return err
	}

	features, samples := X.Dims()
	if features != 1 {
		return errors.NewValueError("FitLine", "only single-feature data can be drawn")
	}
	if samples == 0 {
		return errors.NewModelError("FitLine", "empty data", errors.ErrEmptyData)
	}
	if yr, yc := Y.Dims(); yr != 1 || yc != samples {
		return errors.NewDimensionError("FitLine", samples, yc, 1)
	}

	xs := make([]float64, samples)
	points := make(plotter.XYs, samples)
	for j := range points {
		xs[j] = X.At(0, j)
		points[j].X = xs[j]
		points[j].Y = Y.At(0, j)
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	fitted, err := predictor.Predict(mat.NewDense(1, 2, []float64{lo, hi}))
	if err != nil {
		return errors.Wrap(err, "failed to predict fit line")
	}
	line := plotter.XYs{
		{X: lo, Y: fitted.At(0, 0)},
		{X: hi, Y: fitted.At(0, 1)},
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "invalid data points")
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(2)

	fit, err := plotter.NewLine(line)
	if err != nil {
		return errors.Wrap(err, "invalid fit line")
	}
	fit.LineStyle.Color = lineColor
	fit.LineStyle.Width = vg.Points(2)

	p.Add(scatter, fit)
	p.Legend.Add("data", scatter)
	p.Legend.Add("fit", fit)

	return save(p, path)
}

// LossCurve draws history against the epoch number, starting at 1.
// Non-finite entries, as produced by a diverging run, are left out.
func LossCurve(path, title string, history []float64) error {
	if err := checkFormat("LossCurve", path); err != nil {
		return err
	}
	if len(history) == 0 {
		return errors.NewValueError("LossCurve", "history is empty")
	}

	points := make(plotter.XYs, 0, len(history))
	for i, loss := range history {
		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			continue
		}
		points = append(points, plotter.XY{X: float64(i + 1), Y: loss})
	}
	if len(points) == 0 {
		return errors.NewValueError("LossCurve", "history has no finite values")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "loss"
	p.Add(plotter.NewGrid())

	curve, err := plotter.NewLine(points)
	if err != nil {
		return errors.Wrap(err, "invalid loss history")
	}
	curve.LineStyle.Color = lineColor
	curve.LineStyle.Width = vg.Points(1.5)
	p.Add(curve)

	return save(p, path)
}

func checkFormat(op, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf":
		return nil
	}
	return errors.NewValueError(op, "unsupported image format "+filepath.Ext(path)+" (want .png, .svg or .pdf)")
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	log.GetLogger().Debug("Plot saved", log.ComponentKey, "plot", log.OutputPathKey, path)
	return nil
}
