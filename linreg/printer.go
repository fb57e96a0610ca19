package linreg

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var separator = strings.Repeat("-", 80)

// Printer writes predictions as human readable text. Out and Err default to
// standard output and standard error when nil.
type Printer struct {
	Out      io.Writer
	Err      io.Writer
	Decimals int
}

// NewPrinter returns a Printer writing to the console with one decimal.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Decimals: 1}
}

// PrintRange writes the predictions of t.PredictRange. An invalid range is
// reported on Err and nothing is written to Out.
func (p *Printer) PrintRange(t *Trainer, min, max, step float64) error {
	points, err := t.PredictRange(min, max, step)
	if err != nil {
		p.report(err)
		return err
	}
	return p.write(points)
}

// PrintAll writes the predictions for every training input.
func (p *Printer) PrintAll(t *Trainer) error {
	points, err := t.PredictAll()
	if err != nil {
		p.report(err)
		return err
	}
	return p.write(points)
}

func (p *Printer) write(points []Point) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	var b strings.Builder
	b.WriteString(separator + "\n")
	for i, pt := range points {
		fmt.Fprintf(&b, "Input: %.*f\n", p.Decimals, pt.X)
		fmt.Fprintf(&b, "Predicted output: %.*f\n", p.Decimals, pt.Y)
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString(separator + "\n\n")

	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("could not write predictions: %v", err)
	}
	return nil
}

func (p *Printer) report(err error) {
	w := p.Err
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v!\n\n", err)
}
