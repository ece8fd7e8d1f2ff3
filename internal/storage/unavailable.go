package storage

import (
	"context"
	"io"
	"time"
)

// unavailable is the Storage used when the object store was never configured
// (missing credentials). Every operation fails with ErrBackendUnavailable so
// callers cannot forget the nil check a lazily-initialized client would need.
type unavailable struct{}

// Unavailable returns a Storage whose operations all fail with
// ErrBackendUnavailable.
func Unavailable() Storage {
	return unavailable{}
}

func (unavailable) Upload(context.Context, io.Reader, string, UploadOptions) (*UploadResult, error) {
	return nil, ErrBackendUnavailable
}

func (unavailable) Delete(context.Context, string, string) error {
	return ErrBackendUnavailable
}

func (unavailable) CreateSignedURL(context.Context, string, time.Duration) (string, error) {
	return "", ErrBackendUnavailable
}
