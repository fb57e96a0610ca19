package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/stojg/linreg/linreg"
)

type xyz struct{ x, y []float64 }

func (a xyz) Len() int                { return len(a.x) }
func (a xyz) XY(i int) (x, y float64) { return a.x[i], a.y[i] }

// w/h - A4 (1:1.414)
const (
	plotWidth  = vg.Length(1024)
	plotHeight = vg.Length(1024 * (1 / 1.414))
)

func savePlot(path string, model *linreg.Trainer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %v", path, err)
	}
	if err := renderPlot(f, model); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close output file %v", err)
	}
	return nil
}

func renderPlot(w io.Writer, model *linreg.Trainer) error {
	p, err := createPlot(fmt.Sprintf("y = %0.2fx + %0.2f", model.Weight, model.Bias))
	if err != nil {
		return err
	}
	if err := plotFit(p, model); err != nil {
		return fmt.Errorf("could not plot data: %v", err)
	}
	return writePlot(w, p, plotWidth, plotHeight)
}

func plotFit(p *plot.Plot, model *linreg.Trainer) error {
	p.X.Label.Text = "input"
	p.Y.Label.Text = "output"

	data := &xyz{x: model.Inputs(), y: model.Targets()}
	if data.Len() == 0 {
		return linreg.ErrNoTrainingData
	}

	scatter, err := plotter.NewScatter(data)
	if err != nil {
		return fmt.Errorf("could not create scatter plot: %v", err)
	}
	scatter.GlyphStyle.Shape = draw.CrossGlyph{}
	scatter.Color = color.RGBA{R: 90, G: 180, B: 234, A: 255}
	p.Legend.Add("training data", scatter)
	p.Add(scatter)

	line, err := addRegressionLine(p, scatter, model.Weight, model.Bias)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{20, 100, 240, 255}
	p.Legend.Add("gradient descent", line)

	// the least squares fit, for comparison
	lsW, lsB := model.ClosedForm()
	line, err = addRegressionLine(p, scatter, lsW, lsB)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Legend.Add("least squares", line)

	// a centroid shows the mean of all scatter points and must fall on the regression line
	xMean := stat.Mean(data.x, nil)
	yMean := stat.Mean(data.y, nil)
	if err := addCentroid(p, xMean, yMean); err != nil {
		return err
	}

	addLabel(p, fmt.Sprintf("weight: %0.4f bias: %0.4f", model.Weight, model.Bias))
	addLabel(p, fmt.Sprintf("least squares weight: %0.4f bias: %0.4f", lsW, lsB))
	addLabel(p, fmt.Sprintf("R²: %0.4f cost: %0.4f", model.RSquared(), model.Cost()))
	addLabel(p, fmt.Sprintf("data points: %d", data.Len()))
	return nil
}

func addLabel(p *plot.Plot, text string) {
	p.Legend.Add(text)
}

func addRegressionLine(p *plot.Plot, s *plotter.Scatter, m, c float64) (*plotter.Line, error) {
	min, max, _, _ := s.DataRange()
	l, err := plotter.NewLine(plotter.XYs{
		{min, min*m + c}, {max, max*m + c},
	})
	if err != nil {
		return l, fmt.Errorf("could not create regression line: %v", err)
	}
	p.Add(l)
	return l, nil
}

func addCentroid(p *plot.Plot, xMean, yMean float64) error {
	centroidXYs := xyz{
		x: []float64{xMean},
		y: []float64{yMean},
	}
	centroid, err := plotter.NewScatter(centroidXYs)
	if err != nil {
		return fmt.Errorf("could not create scatter: %v", err)
	}
	centroid.GlyphStyle.Shape = draw.CircleGlyph{}
	centroid.GlyphStyle.Radius = 4.0
	p.Add(centroid)
	return nil
}

func createPlot(label string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("could not create plot: %v", err)
	}
	p.Title.Text = label
	p.Legend.Left = true
	p.Legend.Top = true
	return p, nil
}

func writePlot(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, imageFormat)
	if err != nil {
		return fmt.Errorf("could not create writer: %v", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("could not write plot %v", err)
	}
	return nil
}
