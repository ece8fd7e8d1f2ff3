package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"docshare/internal/config"
)

// minioStorage implements the Storage interface using an S3-compatible
// backend (MinIO, AWS S3, etc.). It is safe for concurrent use by multiple
// goroutines.
type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if
// missing). When credentials are missing it returns an error; callers should
// degrade to Unavailable() instead of crashing.
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStorage{
		client:        cli,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// Upload writes the object at path using streaming I/O. Same-path uploads
// overwrite the existing object (last write wins).
func (m *minioStorage) Upload(ctx context.Context, r io.Reader, path string, opt UploadOptions) (*UploadResult, error) {
	bucket := opt.Bucket
	if bucket == "" {
		bucket = m.bucket
	}

	_, err := m.client.PutObject(ctx, bucket, path, r, opt.Size, minio.PutObjectOptions{
		ContentType: opt.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	res := &UploadResult{
		Path:      path,
		PublicURL: m.publicURL(bucket, path),
	}

	if !opt.MakePublic && opt.ExpiresIn > 0 {
		signed, err := m.CreateSignedURL(ctx, path, opt.ExpiresIn)
		if err != nil {
			return nil, err
		}
		res.SignedURL = signed
	}

	return res, nil
}

// Delete removes an object. Removing a missing key is best-effort; the
// backend does not report it as an error.
func (m *minioStorage) Delete(ctx context.Context, path string, bucket string) error {
	if bucket == "" {
		bucket = m.bucket
	}
	if err := m.client.RemoveObject(ctx, bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

// CreateSignedURL generates a pre-signed GET URL with the specified expiry.
func (m *minioStorage) CreateSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, path, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignFailed, err)
	}
	return u.String(), nil
}

func (m *minioStorage) publicURL(bucket, path string) string {
	if m.publicBaseURL != "" {
		return m.publicBaseURL + "/" + path
	}
	u := m.client.EndpointURL()
	return fmt.Sprintf("%s://%s/%s/%s", u.Scheme, u.Host, bucket, path)
}
