// Package rocplot renders multiclass ROC curves to image files.
package rocplot

import (
	"fmt"
	"image/color"
	"log/slog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/varitext/varitext/metrics"
	"github.com/varitext/varitext/pkg/errors"
	"github.com/varitext/varitext/pkg/log"
)

// Named colors matching the usual ROC palette.
var (
	classColors = []color.RGBA{
		{R: 0, G: 255, B: 255, A: 255},   // aqua
		{R: 255, G: 140, B: 0, A: 255},   // darkorange
		{R: 100, G: 149, B: 237, A: 255}, // cornflowerblue
	}
	microColor = color.RGBA{R: 255, G: 20, B: 147, A: 255} // deeppink
	macroColor = color.RGBA{R: 0, G: 0, B: 128, A: 255}    // navy
	chanceGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Curves bundles the per-class ROC curves of a multiclass problem with
// their micro and macro averages.
type Curves struct {
	Classes  []int
	PerClass []*metrics.ROC
	Micro    *metrics.ROC
	Macro    *metrics.ROC
}

// Compute builds per-class, micro-average and macro-average ROC curves
// from one-hot labels and predicted scores. classes names the label
// behind each column; when nil, columns are named 1..n.
func Compute(yTrue, yScore mat.Matrix, classes []int) (*Curves, error) {
	_, nClasses := yTrue.Dims()
	if classes == nil {
		classes = make([]int, nClasses)
		for j := range classes {
			classes[j] = j + 1
		}
	}
	if len(classes) != nClasses {
		return nil, errors.NewDimensionError("rocplot.Compute", nClasses, len(classes), 1)
	}

	perClass, err := metrics.PerClassROC(yTrue, yScore)
	if err != nil {
		return nil, err
	}
	micro, err := metrics.MicroAverageROC(yTrue, yScore)
	if err != nil {
		return nil, err
	}
	macro, err := metrics.MacroAverageROC(perClass)
	if err != nil {
		return nil, err
	}
	return &Curves{Classes: classes, PerClass: perClass, Micro: micro, Macro: macro}, nil
}

// Plot lays out the curves on a single canvas: one solid line per
// class, dotted micro and macro averages, and the dashed chance
// diagonal.
func (c *Curves) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Receiver operating characteristic"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1.05
	p.Legend.Top = false
	p.Legend.Left = false

	addLine := func(roc *metrics.ROC, col color.RGBA, dashes []vg.Length, width vg.Length, label string) error {
		line, err := plotter.NewLine(rocXYs(roc))
		if err != nil {
			return errors.Wrap(err, "building roc line")
		}
		line.Color = col
		line.Width = width
		line.Dashes = dashes
		p.Add(line)
		p.Legend.Add(label, line)
		return nil
	}

	if err := addLine(c.Micro, microColor, []vg.Length{vg.Points(1), vg.Points(3)}, vg.Points(2),
		fmt.Sprintf("micro-average ROC curve (area = %.2f)", c.Micro.AUC)); err != nil {
		return nil, err
	}
	if err := addLine(c.Macro, macroColor, []vg.Length{vg.Points(1), vg.Points(3)}, vg.Points(2),
		fmt.Sprintf("macro-average ROC curve (area = %.2f)", c.Macro.AUC)); err != nil {
		return nil, err
	}
	for j, roc := range c.PerClass {
		col := classColors[j%len(classColors)]
		label := fmt.Sprintf("ROC curve of class %d (area = %.2f)", c.Classes[j], roc.AUC)
		if err := addLine(roc, col, nil, vg.Points(1.5), label); err != nil {
			return nil, err
		}
	}

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, errors.Wrap(err, "building diagonal")
	}
	diag.Color = chanceGray
	diag.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(diag)

	return p, nil
}

// Save renders the curves to the given file. The image format follows
// the file extension (.png, .svg, .pdf).
func (c *Curves) Save(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving roc plot to %s", path)
	}
	slog.Info("roc plot saved",
		log.OperationKey, "roc_plot",
		log.FileKey, path,
	)
	return nil
}

func rocXYs(roc *metrics.ROC) plotter.XYs {
	pts := make(plotter.XYs, len(roc.FPR))
	for i := range roc.FPR {
		pts[i] = plotter.XY{X: roc.FPR[i], Y: roc.TPR[i]}
	}
	return pts
}
