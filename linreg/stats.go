package linreg

import (
	"gonum.org/v1/gonum/stat"
)

// ClosedForm returns the least squares weight and bias of the training
// pairs, independent of the current parameters.
func (t *Trainer) ClosedForm() (weight, bias float64) {
	if t.Len() < 2 {
		return 0, 0
	}
	bias, weight = stat.LinearRegression(t.inputs, t.targets, nil, false)
	return weight, bias
}

// RSquared is the coefficient of determination of the current parameters.
func (t *Trainer) RSquared() float64 {
	if t.Len() == 0 {
		return 0
	}
	return stat.RSquared(t.inputs, t.targets, nil, t.Bias, t.Weight)
}

// Cost is the mean squared error over the training pairs.
func (t *Trainer) Cost() float64 {
	if t.Len() == 0 {
		return 0
	}
	return t.SSE() / float64(t.Len())
}

// Sum Square Errors
func (t *Trainer) SSE() float64 {
	s := 0.0
	for i, x := range t.inputs {
		d := t.targets[i] - t.Predict(x)
		s += d * d
	}
	return s
}

// Sum Square of Total
func (t *Trainer) SST() float64 {
	if t.Len() == 0 {
		return 0
	}
	m := stat.Mean(t.targets, nil)
	s := 0.0
	for _, y := range t.targets {
		d := y - m
		s += d * d
	}
	return s
}

// Sum Square errors due to regression
func (t *Trainer) SSR() float64 {
	if t.Len() == 0 {
		return 0
	}
	m := stat.Mean(t.targets, nil)
	s := 0.0
	for _, x := range t.inputs {
		d := t.Predict(x) - m
		s += d * d
	}
	return s
}

// Gradient of Cost with respect to weight and bias.
func (t *Trainer) Gradient() (dw, db float64) {
	if t.Len() == 0 {
		return 0, 0
	}
	// cost = 1/N * sum((y - (w*x+b))^2)
	// cost/dw = 2/N * sum(-x * (y - (w*x+b)))
	// cost/db = 2/N * sum(-(y - (w*x+b)))
	for i, x := range t.inputs {
		d := t.targets[i] - t.Predict(x)
		dw -= x * d
		db -= d
	}
	n := float64(t.Len())
	return 2 / n * dw, 2 / n * db
}
