package linreg

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSumsOfSquares(t *testing.T) {
	tr := New()
	tr.Load(trainIn, trainOut)

	if got := tr.SST(); !near(got, 1000) {
		t.Errorf("SST() = %v, want 1000", got)
	}
	if got := tr.SSE(); !near(got, 3420) {
		t.Errorf("untrained SSE() = %v, want 3420", got)
	}
	if got := tr.Cost(); !near(got, 684) {
		t.Errorf("untrained Cost() = %v, want 684", got)
	}
	dw, db := tr.Gradient()
	if !near(dw, -128) || !near(db, -44) {
		t.Errorf("untrained Gradient() = %v, %v, want -128, -44", dw, db)
	}

	tr.Weight, tr.Bias = 10, 2
	if got := tr.SSE(); !near(got, 0) {
		t.Errorf("SSE() of exact fit = %v, want 0", got)
	}
	if got := tr.SSR(); !near(got, 1000) {
		t.Errorf("SSR() of exact fit = %v, want 1000", got)
	}
	if got := tr.RSquared(); !near(got, 1) {
		t.Errorf("RSquared() of exact fit = %v, want 1", got)
	}
	dw, db = tr.Gradient()
	if !near(dw, 0) || !near(db, 0) {
		t.Errorf("Gradient() of exact fit = %v, %v, want 0, 0", dw, db)
	}
}

func TestClosedForm(t *testing.T) {
	tr := New()
	tr.Load(trainIn, trainOut)
	w, b := tr.ClosedForm()
	if !near(w, 10) || !near(b, 2) {
		t.Errorf("ClosedForm() = %v, %v, want 10, 2", w, b)
	}
	if tr.Weight != 0 || tr.Bias != 0 {
		t.Error("ClosedForm changed the model parameters")
	}
}

func TestStatsEmpty(t *testing.T) {
	var tr Trainer
	if tr.Cost() != 0 || tr.SST() != 0 || tr.SSR() != 0 || tr.RSquared() != 0 {
		t.Error("diagnostics of an empty trainer should be zero")
	}
	if w, b := tr.ClosedForm(); w != 0 || b != 0 {
		t.Errorf("ClosedForm() on empty trainer = %v, %v", w, b)
	}
}
