package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/stojg/linreg/linreg"
)

var debug bool
var epochs = 10000
var learningRate = 0.01
var rangeMin, rangeMax, rangeStep = -10.0, 10.0, 1.0
var decimals = 1
var plotPath string
var bucket string
var namespace string

var region = "ap-southeast-2"

const imageFormat = "png"

var (
	trainIn  = []float64{0, 1, 2, 3, 4}
	trainOut = []float64{2, 12, 22, 32, 42}
)

func main() {

	flag.BoolVar(&debug, "d", false, "debug")
	flag.IntVar(&epochs, "epochs", epochs, "training epochs")
	flag.Float64Var(&learningRate, "rate", learningRate, "learning rate")
	flag.Float64Var(&rangeMin, "min", rangeMin, "lowest input to predict")
	flag.Float64Var(&rangeMax, "max", rangeMax, "highest input to predict")
	flag.Float64Var(&rangeStep, "step", rangeStep, "distance between predicted inputs")
	flag.IntVar(&decimals, "decimals", decimals, "decimals per printed value")
	flag.StringVar(&plotPath, "plot", "", "write a "+imageFormat+" plot of the fit to this file")
	flag.StringVar(&bucket, "bucket", "", "upload a plot of the fit to this S3 bucket")
	flag.StringVar(&namespace, "namespace", "", "publish the fitted model to this CloudWatch namespace")
	flag.StringVar(&region, "region", region, "AWS region")
	flag.Parse()

	model := linreg.New()
	model.Load(trainIn, trainOut)
	model.Fit(epochs, learningRate)

	printer := linreg.NewPrinter()
	printer.Decimals = decimals
	if debug {
		printDiagnostics(model)
		printer.PrintAll(model)
	}
	printer.PrintRange(model, rangeMin, rangeMax, rangeStep)

	if plotPath != "" {
		if err := savePlot(plotPath, model); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write out plot %v\n", err)
		}
	}

	if err := publish(context.Background(), model); err != nil {
		log.Fatal(err)
	}
}

func printDiagnostics(model *linreg.Trainer) {
	w, b := model.ClosedForm()
	dw, db := model.Gradient()
	fmt.Printf("weight: %0.4f bias: %0.4f (least squares: %0.4f %0.4f)\n", model.Weight, model.Bias, w, b)
	fmt.Printf("cost: %0.6f gradient: %0.6f %0.6f\n", model.Cost(), dw, db)
	fmt.Printf("SSE: %0.4f SSR: %0.4f SST: %0.4f R²: %0.4f\n\n", model.SSE(), model.SSR(), model.SST(), model.RSquared())
}

// publish ships the fitted model to whichever AWS destinations were asked for.
func publish(ctx context.Context, model *linreg.Trainer) error {
	if bucket == "" && namespace == "" {
		return nil
	}
	sess, err := newSession(region)
	if err != nil {
		return fmt.Errorf("could not create AWS session: %v", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if bucket != "" {
		g.Go(func() error {
			link, err := uploadPlot(ctx, sess, model, bucket)
			if err != nil {
				return err
			}
			fmt.Printf("plot: %s\n", link)
			return nil
		})
	}
	if namespace != "" {
		g.Go(func() error {
			return putModelMetrics(ctx, sess, namespace, model)
		})
	}
	return g.Wait()
}
