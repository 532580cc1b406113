package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"sieeg_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingDocumentsBucket = errors.New("missing DOCUMENTS_BUCKET")

// S3FileStorage stores rendered documents in an S3 bucket so their URLs can
// be shared with clients.
//
// Supported env vars (local-friendly, e.g. MinIO or LocalStack):
//   - DOCUMENTS_BUCKET (required)
//   - DOCUMENTS_PREFIX (optional key prefix, default: documentos)
//   - DOCUMENTS_PUBLIC_URL (optional base for returned URLs)
//   - S3_ENDPOINT (optional; forces path-style addressing)
type S3FileStorage struct {
	client    *s3.Client
	bucket    string
	prefix    string
	publicURL string
}

var _ interfaces.IFileStorage = (*S3FileStorage)(nil)

func NewS3FileStorage(ctx context.Context) (*S3FileStorage, error) {
	bucket := strings.TrimSpace(os.Getenv("DOCUMENTS_BUCKET"))
	if bucket == "" {
		log.Printf("[storage][s3] missing DOCUMENTS_BUCKET")
		return nil, ErrMissingDocumentsBucket
	}

	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("S3_ENDPOINT")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if endpoint != "" {
		// Local object stores do not validate credentials, but the SDK requires them.
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Printf("[storage][s3] failed loading aws config err=%v", err)
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	log.Printf("[storage][s3] client initialized bucket=%s region=%s", bucket, region)

	return &S3FileStorage{
		client:    client,
		bucket:    bucket,
		prefix:    strings.Trim(getenvDefault("DOCUMENTS_PREFIX", "documentos"), "/"),
		publicURL: strings.TrimSuffix(os.Getenv("DOCUMENTS_PUBLIC_URL"), "/"),
	}, nil
}

func (s *S3FileStorage) Upload(ctx context.Context, orderID, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s/%s", s.prefix, orderID, filename)
	if s.prefix == "" {
		key = fmt.Sprintf("%s/%s", orderID, filename)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[storage][s3] upload success key=%s size=%d", key, len(data))

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key), nil
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
