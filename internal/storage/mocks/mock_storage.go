package mocks

import (
	"context"
	"io"
	"time"

	"docshare/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, r io.Reader, path string, opt storage.UploadOptions) (*storage.UploadResult, error) {
	args := m.Called(ctx, r, path, opt)
	if f, ok := args.Get(0).(func(context.Context, io.Reader, string, storage.UploadOptions) *storage.UploadResult); ok {
		return f(ctx, r, path, opt), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, path string, bucket string) error {
	args := m.Called(ctx, path, bucket)
	return args.Error(0)
}

func (m *MockStorage) CreateSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, path, expiry)
	return args.String(0), args.Error(1)
}

type MockPresigner struct {
	mock.Mock
}

func (m *MockPresigner) SignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
