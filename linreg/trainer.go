// Package linreg fits a single-variable linear model y = weight*x + bias
// by stochastic gradient descent.
package linreg

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrInvalidRange is returned when a prediction range has min >= max
	// or a non-positive step.
	ErrInvalidRange = errors.New("minimum input value cannot be higher or equal to maximum input value")

	// ErrNoTrainingData is returned when predictions over the training
	// inputs are requested before any pairs were loaded.
	ErrNoTrainingData = errors.New("training data missing")
)

// Point is a single input with its predicted output.
type Point struct {
	X, Y float64
}

// Trainer holds paired training data and the two model parameters.
// A Trainer is not safe for concurrent use.
type Trainer struct {
	Bias   float64
	Weight float64

	inputs  []float64
	targets []float64
	order   []int
	rnd     *rand.Rand
}

// New returns a Trainer whose shuffles are seeded from the clock.
func New() *Trainer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Trainer drawing its per-epoch permutations from src.
func NewWithSource(src rand.Source) *Trainer {
	return &Trainer{rnd: rand.New(src)}
}

// Load stores the training pairs. If the slices differ in length both are
// truncated to the shorter one.
func (t *Trainer) Load(inputs, targets []float64) {
	n := len(inputs)
	if len(targets) < n {
		n = len(targets)
	}
	t.inputs = append([]float64(nil), inputs[:n]...)
	t.targets = append([]float64(nil), targets[:n]...)

	t.order = make([]int, n)
	for i := range t.order {
		t.order[i] = i
	}
}

// Len returns the number of stored training pairs.
func (t *Trainer) Len() int {
	return len(t.order)
}

func (t *Trainer) Inputs() []float64 {
	return append([]float64(nil), t.inputs...)
}

func (t *Trainer) Targets() []float64 {
	return append([]float64(nil), t.targets...)
}

// Fit runs epochs passes over the training pairs. Each pass visits the pairs
// in a freshly shuffled order and adjusts the parameters after every pair.
func (t *Trainer) Fit(epochs int, learningRate float64) {
	if t.Len() == 0 {
		return
	}
	for epoch := 0; epoch < epochs; epoch++ {
		t.shuffle()
		for _, i := range t.order {
			t.optimize(t.inputs[i], t.targets[i], learningRate)
		}
	}
}

func (t *Trainer) shuffle() {
	if t.rnd == nil {
		t.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t.rnd.Shuffle(len(t.order), func(i, j int) {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	})
}

func (t *Trainer) optimize(x, y, learningRate float64) {
	e := y - t.Predict(x)
	t.Weight += learningRate * e * x
	t.Bias += learningRate * e
}

// Predict returns weight*x + bias.
func (t *Trainer) Predict(x float64) float64 {
	return t.Weight*x + t.Bias
}

// PredictRange predicts min, min+step, min+2*step, ... up to and including max.
func (t *Trainer) PredictRange(min, max, step float64) ([]Point, error) {
	if min >= max || step <= 0 {
		return nil, ErrInvalidRange
	}
	var points []Point
	// x from i, repeated addition drifts past max
	for i := 0; ; i++ {
		x := min + float64(i)*step
		if x > max {
			break
		}
		points = append(points, Point{X: x, Y: t.Predict(x)})
	}
	return points, nil
}

// PredictAll predicts every stored training input in stored order.
func (t *Trainer) PredictAll() ([]Point, error) {
	if t.Len() == 0 {
		return nil, ErrNoTrainingData
	}
	points := make([]Point, len(t.inputs))
	for i, x := range t.inputs {
		points[i] = Point{X: x, Y: t.Predict(x)}
	}
	return points, nil
}
