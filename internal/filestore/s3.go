package filestore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	// PublicURL is the base clients download objects from, e.g. a CDN or the
	// bucket's website endpoint.
	PublicURL string
}

// S3 keeps images in an S3-compatible bucket.
type S3 struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ FileStore = (*S3)(nil)

func NewS3(conf S3Config) (*S3, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	publicURL := strings.TrimRight(conf.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if conf.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, conf.Endpoint, conf.Bucket)
	}

	return &S3{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: publicURL,
	}, nil
}

// CheckBucket verifies the configured bucket exists.
func (s *S3) CheckBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func (s *S3) WriteRecipeImage(ctx context.Context, suffix, contentType string, data []byte) (string, error) {
	key := recipeImageKey(generateKeyID(), suffix)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("uploading %q: %w", key, err)
	}
	return key, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (s *S3) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
