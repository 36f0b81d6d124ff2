// Package minio implements object storage on a MinIO (S3-compatible) bucket.
// Uploaded artifacts are immutable: every Put writes a fresh object under a
// generated key, and the returned URL is what the workflow records.
package minio

import (
	"bytes"
	"context"
	"fmt"

	"lockers/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the connection parameters for the bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ObjectStorage stores uploaded artifacts in a single bucket, one key
// prefix per category ("documents", "payments").
type ObjectStorage struct {
	client *minio.Client
	cfg    Config
}

// NewObjectStorage connects to MinIO and ensures the bucket exists.
func NewObjectStorage(ctx context.Context, cfg Config) (*ObjectStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errs.NewStorageError("connect", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errs.NewStorageError("check bucket", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errs.NewStorageError("create bucket", err)
		}
	}

	return &ObjectStorage{client: client, cfg: cfg}, nil
}

// Put uploads the artifact under a generated key and returns its URL.
// The key embeds a fresh UUID, so identical uploads never collide.
func (s *ObjectStorage) Put(ctx context.Context, category string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", category, uuid.NewString(), extensionFor(contentType))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errs.NewStorageError("put object", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
