package contracts

import (
	"context"
	"io"
)

// StoredObject is the metadata the object store holds for an uploaded file.
type StoredObject struct {
	Key         string
	FileName    string
	Size        int64
	ContentType string
}

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectKey string, reader io.Reader, size int64, contentType, fileName string) error
	// StatObject returns nil without an error when the object does not exist.
	StatObject(ctx context.Context, bucketName, objectKey string) (*StoredObject, error)
}
