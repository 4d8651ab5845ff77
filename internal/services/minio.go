package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore keeps backup archives in a MinIO bucket.
type ObjectStore struct {
	Client *minio.Client
	Bucket string
}

// NewObjectStore connects to MinIO and creates the bucket if it doesn't exist.
func NewObjectStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created bucket: %s", bucket)
	}

	log.Println("Connected to MinIO successfully")
	return &ObjectStore{Client: client, Bucket: bucket}, nil
}

func (s *ObjectStore) CheckConnection(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return fmt.Errorf("object store not initialized")
	}
	_, err := s.Client.BucketExists(ctx, s.Bucket)
	return err
}

func (s *ObjectStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := s.Client.PutObject(ctx, s.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s *ObjectStore) Download(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (s *ObjectStore) Delete(ctx context.Context, objectName string) error {
	return s.Client.RemoveObject(ctx, s.Bucket, objectName, minio.RemoveObjectOptions{})
}
