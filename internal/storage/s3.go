package storage

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const basePath = "attachments/"

// S3Store uploads quote-request attachments to a bucket. Keys are prefixed
// with a random id so colliding filenames never overwrite each other.
type S3Store struct {
	bucket string
	client *s3.Client
}

// NewS3Store loads the default AWS config and binds the store to a bucket.
func NewS3Store(ctx context.Context, region, bucket string) (*S3Store, error) {
	if region == "" || bucket == "" {
		return nil, errors.New("s3 region and bucket must be set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &S3Store{
		bucket: bucket,
		client: s3.NewFromConfig(cfg),
	}, nil
}

// UploadFile stores the payload and returns the object key.
func (s *S3Store) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	if filename == "" {
		return "", errors.New("filename is empty")
	}

	key := basePath + uuid.NewString() + "/" + filepath.Base(filename)
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return key, nil
}
