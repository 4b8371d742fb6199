package ports

import (
	"context"
	"io"
)

// ObjectHandle — ссылка на загруженный объект в бакете
type ObjectHandle struct {
	Bucket string
	Key    string
	URL    string
}

// Низкоуровневый клиент к S3
type Storage interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (ObjectHandle, error)
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
}
