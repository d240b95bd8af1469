package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// uploadConcurrency bounds the fan-out of batch uploads and deletes.
const uploadConcurrency = 4

// UploadInput is one file of a batch upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type ImageService interface {
	// Upload stores the object under a fresh name inside folder and returns
	// its public URL.
	Upload(ctx context.Context, folder string, in UploadInput) (string, error)
	// UploadBatch uploads every input with bounded concurrency. The returned
	// slice is positional; a failed entry is left empty and its error is
	// part of the aggregated error.
	UploadBatch(ctx context.Context, folder string, ins []UploadInput) ([]string, error)
	// Replace overwrites an existing object, keeping its name.
	Replace(ctx context.Context, folder, name string, in UploadInput) (string, error)
	Delete(ctx context.Context, folder, name string) error
	DeleteBatch(ctx context.Context, folder string, names []string) error
}

type s3ImageService struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

func NewImageService(ctx context.Context) (ImageService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logrus.WithError(err).Error("unable to load AWS SDK config")
		return nil, err
	}
	return &s3ImageService{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("S3_BUCKET_NAME"),
		prefix: os.Getenv("FOLDER_BUCKET"),
		region: cfg.Region,
	}, nil
}

func (s *s3ImageService) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *s3ImageService) put(ctx context.Context, key string, in UploadInput) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(in.ContentType),
		Body:        in.Body,
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("failed to put object")
	}
	return err
}

func (s *s3ImageService) Upload(ctx context.Context, folder string, in UploadInput) (string, error) {
	name := uuid.NewString() + path.Ext(in.Filename)
	key := path.Join(s.prefix, folder, name)
	if err := s.put(ctx, key, in); err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *s3ImageService) UploadBatch(ctx context.Context, folder string, ins []UploadInput) ([]string, error) {
	urls := make([]string, len(ins))
	errs := make([]error, len(ins))

	var g errgroup.Group
	g.SetLimit(uploadConcurrency)
	for i, in := range ins {
		g.Go(func() error {
			url, err := s.Upload(ctx, folder, in)
			urls[i] = url
			errs[i] = err
			return nil
		})
	}
	g.Wait()

	return urls, errors.Join(errs...)
}

func (s *s3ImageService) Replace(ctx context.Context, folder, name string, in UploadInput) (string, error) {
	key := path.Join(s.prefix, folder, name)
	if err := s.put(ctx, key, in); err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *s3ImageService) Delete(ctx context.Context, folder, name string) error {
	key := path.Join(s.prefix, folder, name)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("failed to delete object")
	}
	return err
}

func (s *s3ImageService) DeleteBatch(ctx context.Context, folder string, names []string) error {
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(uploadConcurrency)
	for i, name := range names {
		g.Go(func() error {
			errs[i] = s.Delete(ctx, folder, name)
			return nil
		})
	}
	g.Wait()

	return errors.Join(errs...)
}
