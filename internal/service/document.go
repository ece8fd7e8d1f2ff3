package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/model"
	"docshare/internal/repository"
	"docshare/internal/storage"
)

var (
	ErrReaderNil    = errors.New("reader is nil")
	ErrTeamRequired = errors.New("team id is required")
	ErrNotFound     = errors.New("document not found")
	ErrAccessDenied = errors.New("access denied")
	// ErrNotAccessible marks a reference that resolved to something other
	// than a fetchable URL (e.g. a bare local path).
	ErrNotAccessible = errors.New("document not accessible")
)

// UploadDescriptor is returned to the caller after a successful upload.
type UploadDescriptor struct {
	Path        string `json:"path"`
	PublicURL   string `json:"publicUrl"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize"`
	NumPages    int    `json:"numPages"`
}

// DownloadResult carries everything the download handler needs to redirect.
type DownloadResult struct {
	URL         string
	Filename    string
	ContentType string
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload stores the content under a generated path, persists the
	// document record, and returns a descriptor. PDF page counts are
	// derived best-effort; extraction failure defaults to 1.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, teamID string) (*UploadDescriptor, error)

	// CanAccess reports whether the caller may read the document: team
	// members always may, a matching share link grants anonymous access.
	// Lookup failures deny (fail closed) and are logged, never surfaced.
	CanAccess(ctx context.Context, documentID, userID, linkID string) bool

	// Download runs the access check and resolves the stored reference to
	// a redirectable URL. Fails with ErrAccessDenied, ErrNotFound, or
	// ErrNotAccessible.
	Download(ctx context.Context, documentID, userID, linkID string) (*DownloadResult, error)

	// Delete removes a document from storage and then its record.
	Delete(ctx context.Context, id string) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store    storage.Storage
	repo     repository.DocumentRepository
	resolver FileResolver
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, resolver FileResolver) DocumentService {
	return &documentService{store: store, repo: repo, resolver: resolver}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, teamID string) (*UploadDescriptor, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if teamID == "" {
		return nil, ErrTeamRequired
	}

	// Buffered so the page counter can re-read the content. The handler
	// enforces the size cap before this point.
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if size <= 0 {
		size = int64(len(content))
	}

	if contentType == "" || contentType == "application/octet-stream" {
		contentType = storage.MIMEType(originalFilename)
	}

	path := storage.GeneratePath(originalFilename, teamID)
	res, err := s.store.Upload(ctx, bytes.NewReader(content), path, storage.UploadOptions{
		Size:        size,
		ContentType: contentType,
		MakePublic:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	numPages := 1
	if contentType == "application/pdf" {
		if n, perr := pdfPageCount(content); perr != nil {
			logWarn("pdf_page_count_failed", map[string]any{"path": path, "error": perr.Error()})
		} else {
			numPages = n
		}
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Name:        originalFilename,
		File:        res.Path,
		Type:        strings.ToLower(strings.TrimPrefix(filepath.Ext(originalFilename), ".")),
		StorageType: model.StorageTypeObjectKey,
		TeamID:      teamID,
		Size:        size,
		NumPages:    numPages,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, doc); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, path, ""); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	return &UploadDescriptor{
		Path:        res.Path,
		PublicURL:   res.PublicURL,
		FileName:    originalFilename,
		ContentType: contentType,
		FileSize:    size,
		NumPages:    numPages,
	}, nil
}

// CanAccess fails closed: any lookup error, including a missing document,
// denies access.
func (s *documentService) CanAccess(ctx context.Context, documentID, userID, linkID string) bool {
	access, err := s.repo.FindAccess(ctx, documentID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logWarn("document_access_check_failed", map[string]any{"document_id": documentID, "error": err.Error()})
		}
		return false
	}

	if userID != "" && slices.Contains(access.MemberIDs, userID) {
		return true
	}
	if linkID != "" && slices.Contains(access.LinkIDs, linkID) {
		return true
	}
	return false
}

func (s *documentService) Download(ctx context.Context, documentID, userID, linkID string) (*DownloadResult, error) {
	if !s.CanAccess(ctx, documentID, userID, linkID) {
		return nil, ErrAccessDenied
	}

	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	url, err := s.resolver.Resolve(ctx, doc.StorageType, doc.File, true)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(url, "http") {
		return nil, ErrNotAccessible
	}

	contentType := storage.MIMEType(doc.Type)
	return &DownloadResult{
		URL:         url,
		Filename:    doc.Name,
		ContentType: contentType,
	}, nil
}

// Delete removes a document from storage, then deletes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Inline blobs live at the CDN, not in the object store; only object
	// keys have something to remove here.
	if doc.StorageType == model.StorageTypeObjectKey {
		if err := s.store.Delete(ctx, doc.File, ""); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}
