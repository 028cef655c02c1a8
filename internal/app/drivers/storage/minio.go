package storage

import (
	"context"
	"log"
	"net/url"
	"recognition-service/internal/app/config"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endpoint, secure := ParseServiceUri(driverConfig.BlobStorage.ServiceUri, driverConfig.BlobStorage.UseSSL)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  NewCredentials(driverConfig.BlobStorage),
		Secure: secure,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bucketName := driverConfig.BlobStorage.BucketName
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatalf("Failed to create minio bucket %s: %s", bucketName, err.Error())
		}
		log.Printf("Successfully created minio bucket %s", bucketName)
	}

	log.Println("Successfully connected to minio")
	return minioClient
}

// NewCredentials picks the instance IAM provider when managed identity is
// enabled and static keys otherwise.
func NewCredentials(blobStorage config.BlobStorage) *credentials.Credentials {
	if blobStorage.UseManagedIdentity {
		return credentials.NewIAM("")
	}
	return credentials.NewStaticV4(blobStorage.AccessKey, blobStorage.SecretKey, "")
}

// ParseServiceUri strips an optional scheme from the service uri. An https
// scheme forces a secure connection.
func ParseServiceUri(serviceUri string, useSSL bool) (string, bool) {
	if !strings.Contains(serviceUri, "://") {
		return strings.TrimSuffix(serviceUri, "/"), useSSL
	}
	parsed, err := url.Parse(serviceUri)
	if err != nil {
		return serviceUri, useSSL
	}
	return parsed.Host, useSSL || parsed.Scheme == "https"
}
