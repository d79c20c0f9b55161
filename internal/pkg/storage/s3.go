package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const MaxFileSize = 10 * 1024 * 1024

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"video/mp4":  true,
}

type Store struct {
	client *s3.Client
	bucket string
	region string
}

func New(ctx context.Context, bucket, region string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload validates and stores a multipart file under a tenant-prefixed key,
// returning the key and public URL.
func (s *Store) Upload(ctx context.Context, tenantID uuid.UUID, file *multipart.FileHeader) (key, url string, err error) {
	if file.Size > MaxFileSize {
		return "", "", fmt.Errorf("file too large: %d bytes (max %d)", file.Size, MaxFileSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return "", "", fmt.Errorf("unsupported content type %q", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", "", err
	}

	key = fmt.Sprintf("%s/%d-%s%s",
		tenantID, time.Now().UnixNano(), uuid.NewString()[:8], filepath.Ext(file.Filename))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	url = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	return key, url, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
