// internal/app/system/storage/s3.go
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the settings for an S3-backed store.
type S3Config struct {
	Region string
	Bucket string
	Prefix string // key prefix, e.g. "uploads/"

	// PublicURL, when set, is used as the URL base instead of the default
	// bucket endpoint (e.g. a CDN distribution in front of the bucket).
	PublicURL string
}

// S3 stores objects in an S3 bucket. Uploads go through the SDK's managed
// uploader, which handles multipart transfers for larger files.
type S3 struct {
	uploader *manager.Uploader
	client   *s3.Client
	cfg      S3Config
}

// NewS3 builds an S3 store using the ambient AWS credential chain.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3{
		uploader: manager.NewUploader(client),
		client:   client,
		cfg:      cfg,
	}, nil
}

func (s *S3) key(path string) string {
	return s.cfg.Prefix + strings.TrimPrefix(path, "/")
}

// Put streams the object to the bucket.
func (s *S3) Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(path)),
		Body:   r,
	}
	if opts != nil && opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return fmt.Errorf("s3 upload: %w", err)
	}
	return nil
}

// Delete removes the object from the bucket.
func (s *S3) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}

// URL returns the public URL for the object: the configured distribution
// when one is set, otherwise the bucket's virtual-hosted endpoint.
func (s *S3) URL(path string) string {
	key := s.key(path)
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
