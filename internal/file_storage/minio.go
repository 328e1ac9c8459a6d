package filestorage

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/SeakMengs/PDFStudio/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects and makes sure the bucket exists, mirroring the
// eager directory creation of the local backend.
func NewMinioStorage(ctx context.Context, cfg *config.MinioConfig) (*MinioStorage, error) {
	client, err := NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.BUCKET)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.BUCKET, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStorage{client: client, bucket: cfg.BUCKET}, nil
}

func (ms *MinioStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	info, err := ms.client.PutObject(ctx, ms.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return info.Key, nil
}

func (ms *MinioStorage) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	object, err := ms.client.GetObject(ctx, ms.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}

	// GetObject is lazy; Stat is where a missing key surfaces.
	info, err := object.Stat()
	if err != nil {
		object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, fmt.Errorf("%s: %w", key, fs.ErrNotExist)
		}
		return nil, 0, err
	}

	return object, info.Size, nil
}

func (ms *MinioStorage) Remove(ctx context.Context, key string) error {
	// S3 removal of a missing key already succeeds silently.
	return ms.client.RemoveObject(ctx, ms.bucket, key, minio.RemoveObjectOptions{})
}

func (ms *MinioStorage) Path(key string) string {
	return key
}
