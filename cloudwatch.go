package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"github.com/stojg/linreg/linreg"
)

const modelDimension = "Model"
const modelName = "linreg"

func putModelMetrics(ctx context.Context, sess *session.Session, ns string, model *linreg.Trainer) error {
	client := cloudwatch.New(sess)
	_, err := client.PutMetricDataWithContext(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(ns),
		MetricData: modelMetrics(model, time.Now()),
	})
	if err != nil {
		return fmt.Errorf("could not put metrics to '%s': %v", ns, err)
	}
	return nil
}

func modelMetrics(model *linreg.Trainer, now time.Time) []*cloudwatch.MetricDatum {
	values := []struct {
		name  string
		value float64
	}{
		{"Weight", model.Weight},
		{"Bias", model.Bias},
		{"Cost", model.Cost()},
		{"RSquared", model.RSquared()},
	}

	var data []*cloudwatch.MetricDatum
	for _, v := range values {
		data = append(data, &cloudwatch.MetricDatum{
			Dimensions: []*cloudwatch.Dimension{
				{
					Name:  aws.String(modelDimension),
					Value: aws.String(modelName),
				},
			},
			MetricName: aws.String(v.name),
			Timestamp:  aws.Time(now),
			Unit:       aws.String(cloudwatch.StandardUnitNone),
			Value:      aws.Float64(v.value),
		})
	}
	return data
}
