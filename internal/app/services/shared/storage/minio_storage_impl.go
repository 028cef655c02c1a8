package storage

import (
	"context"
	"io"
	"net/url"
	"path"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

const fileNameMetadataKey = "Filename"

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectKey string, reader io.Reader, size int64, contentType, fileName string) error {
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectKey, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{fileNameMetadataKey: url.QueryEscape(fileName)},
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (m *minioStorage) StatObject(ctx context.Context, bucketName, objectKey string) (*contracts.StoredObject, error) {
	info, err := m.MinioClient.StatObject(ctx, bucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, exceptions.ErrMinioStatObject(err, bucketName)
	}

	return &contracts.StoredObject{
		Key:         objectKey,
		FileName:    storedFileName(info, objectKey),
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func storedFileName(info minio.ObjectInfo, objectKey string) string {
	escaped := info.UserMetadata[fileNameMetadataKey]
	if escaped == "" {
		escaped = info.Metadata.Get("X-Amz-Meta-" + fileNameMetadataKey)
	}
	if escaped != "" {
		if fileName, err := url.QueryUnescape(escaped); err == nil && fileName != "" {
			return fileName
		}
	}
	return path.Base(objectKey)
}
