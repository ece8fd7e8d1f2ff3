package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docshare/internal/config"
)

func configFor(endpoint, access, secret, bucket string) config.MinIOConfig {
	return config.MinIOConfig{
		Endpoint:  endpoint,
		AccessKey: access,
		SecretKey: secret,
		Bucket:    bucket,
	}
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	s := Unavailable()

	_, err := s.Upload(ctx, strings.NewReader("x"), "p", UploadOptions{})
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	assert.ErrorIs(t, s.Delete(ctx, "p", ""), ErrBackendUnavailable)

	_, err = s.CreateSignedURL(ctx, "p", time.Minute)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestNewMinIO_MissingConfig(t *testing.T) {
	// Degradation path: missing credentials must be reported as an error,
	// not a panic, so main can swap in Unavailable().
	tests := []struct {
		name     string
		endpoint string
		access   string
		secret   string
		bucket   string
	}{
		{"no endpoint", "", "a", "s", "b"},
		{"no credentials", "localhost:9000", "", "", "b"},
		{"no bucket", "localhost:9000", "a", "s", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinIO(configFor(tt.endpoint, tt.access, tt.secret, tt.bucket))
			assert.Error(t, err)
		})
	}
}
