package mocks

import (
	"context"
	"io"

	"docshare/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, teamID string) (*service.UploadDescriptor, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadDescriptor), args.Error(1)
}

func (m *MockDocumentService) CanAccess(ctx context.Context, documentID, userID, linkID string) bool {
	args := m.Called(ctx, documentID, userID, linkID)
	return args.Bool(0)
}

func (m *MockDocumentService) Download(ctx context.Context, documentID, userID, linkID string) (*service.DownloadResult, error) {
	args := m.Called(ctx, documentID, userID, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadResult), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
