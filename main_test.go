package main

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"

	"github.com/stojg/linreg/linreg"
)

func trainedModel() *linreg.Trainer {
	model := linreg.NewWithSource(rand.NewSource(1))
	model.Load(trainIn, trainOut)
	model.Fit(epochs, learningRate)
	return model
}

func TestRenderPlot(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPlot(&buf, trainedModel()); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("plot is not a png, starts with %q", buf.Bytes()[:8])
	}
}

func TestPlotFitEmpty(t *testing.T) {
	p, err := createPlot("empty")
	if err != nil {
		t.Fatal(err)
	}
	if err := plotFit(p, linreg.New()); !errors.Is(err, linreg.ErrNoTrainingData) {
		t.Errorf("err = %v, want ErrNoTrainingData", err)
	}
}

func TestModelMetrics(t *testing.T) {
	model := linreg.New()
	model.Load(trainIn, trainOut)
	model.Weight, model.Bias = 10, 2

	now := time.Date(2018, 8, 14, 0, 0, 0, 0, time.UTC)
	data := modelMetrics(model, now)
	want := map[string]float64{"Weight": 10, "Bias": 2, "Cost": 0, "RSquared": 1}
	if len(data) != len(want) {
		t.Fatalf("got %d metrics, want %d", len(data), len(want))
	}
	for _, d := range data {
		name := aws.StringValue(d.MetricName)
		w, ok := want[name]
		if !ok {
			t.Errorf("unexpected metric %s", name)
			continue
		}
		if got := aws.Float64Value(d.Value); got-w > 1e-9 || w-got > 1e-9 {
			t.Errorf("%s = %v, want %v", name, got, w)
		}
		if !aws.TimeValue(d.Timestamp).Equal(now) {
			t.Errorf("%s timestamp = %v", name, aws.TimeValue(d.Timestamp))
		}
		if len(d.Dimensions) != 1 || aws.StringValue(d.Dimensions[0].Value) != modelName {
			t.Errorf("%s dimensions = %v", name, d.Dimensions)
		}
	}
}

func TestPlotKey(t *testing.T) {
	got := plotKey(time.Date(2018, 8, 14, 12, 0, 0, 0, time.UTC))
	if want := "2018-08-14 linreg.png"; got != want {
		t.Errorf("plotKey = %q, want %q", got, want)
	}
}

func TestCreateBucketInput(t *testing.T) {
	in := createBucketInput("fits", "ap-southeast-2")
	if in.CreateBucketConfiguration == nil || aws.StringValue(in.CreateBucketConfiguration.LocationConstraint) != "ap-southeast-2" {
		t.Errorf("missing location constraint: %v", in)
	}
	if in := createBucketInput("fits", "us-east-1"); in.CreateBucketConfiguration != nil {
		t.Errorf("us-east-1 should not set a location constraint: %v", in)
	}
}

func TestPublishNothing(t *testing.T) {
	if err := publish(context.Background(), linreg.New()); err != nil {
		t.Errorf("publish without destinations: %v", err)
	}
}
