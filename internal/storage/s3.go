package storage

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/shiftwise/staff-scheduler/internal/config"
)

// S3ImageStore keeps profile images in an S3 bucket (or any S3-compatible
// endpoint) under random webp keys.
type S3ImageStore struct {
	client *s3.Client
	bucket string
}

func NewS3ImageStore(cfg *config.Config) *S3ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &S3ImageStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

func (s *S3ImageStore) Store(
	ctx context.Context,
	data []byte,
	contentType string,
) (string, error) {

	encoded, err := normalizeImage(data)
	if err != nil {
		return "", err
	}

	key := "staff/" + uuid.NewString() + ".webp"

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (s *S3ImageStore) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
