package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/stojg/linreg/linreg"
)

func newSession(reg string) (*session.Session, error) {
	return session.NewSession(&aws.Config{Region: aws.String(reg)})
}

func checkBucketExists(ctx context.Context, svc *s3.S3, name string) (bool, error) {
	list, err := svc.ListBucketsWithContext(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return false, fmt.Errorf("could not list buckets: %v", err)
	}
	for _, b := range list.Buckets {
		if aws.StringValue(b.Name) == name {
			return true, nil
		}
	}
	return false, nil
}

func createBucket(ctx context.Context, sess *session.Session, name string) error {
	svc := s3.New(sess)
	exists, err := checkBucketExists(ctx, svc, name)
	if err != nil || exists {
		return err
	}

	_, err = svc.CreateBucketWithContext(ctx, createBucketInput(name, aws.StringValue(sess.Config.Region)))
	if err != nil {
		return fmt.Errorf("unable to create bucket %q, %v", name, err)
	}

	fmt.Printf("Waiting for bucket %q to be created...\n", name)
	err = svc.WaitUntilBucketExistsWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("error occurred while waiting for bucket %q to be created, %v", name, err)
	}

	fmt.Printf("Bucket %q successfully created\n", name)
	return nil
}

func createBucketInput(name, reg string) *s3.CreateBucketInput {
	in := &s3.CreateBucketInput{Bucket: aws.String(name)}
	// us-east-1 rejects an explicit location constraint
	if reg != "" && reg != "us-east-1" {
		in.CreateBucketConfiguration = &s3.CreateBucketConfiguration{
			LocationConstraint: aws.String(reg),
		}
	}
	return in
}

func plotKey(now time.Time) string {
	return now.Format("2006-01-02") + " linreg." + imageFormat
}

// uploadPlot renders the model plot straight into S3 and returns a
// presigned link to it.
func uploadPlot(ctx context.Context, sess *session.Session, model *linreg.Trainer, bucketName string) (string, error) {
	if err := createBucket(ctx, sess, bucketName); err != nil {
		return "", err
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(renderPlot(pw, model))
	}()

	location := plotKey(time.Now())
	uploader := s3manager.NewUploader(sess)
	_, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(location),
		Body:   pr,
	})
	pr.Close()
	if err != nil {
		return "", fmt.Errorf("error occurred while piping plot to s3: %v", err)
	}

	return getPresignedLink(sess, location, bucketName)
}

func getPresignedLink(sess *session.Session, location string, bucketName string) (string, error) {
	svc := s3.New(sess)

	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(location),
	})
	urlStr, err := req.Presign(1 * time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}
	return urlStr, nil
}
