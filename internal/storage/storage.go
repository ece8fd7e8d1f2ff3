package storage

import (
	"context"
	"io"
	"time"
)

// Package storage wraps an S3-compatible object store behind a uniform
// interface. Implementations must rely on streaming I/O only; no local disk.

// UploadOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; -1 lets the backend
// buffer/chunk as it supports.
type UploadOptions struct {
	Size        int64
	ContentType string
	// Bucket overrides the client's default bucket when non-empty.
	Bucket string
	// MakePublic requests a public URL only. When false and ExpiresIn is
	// set, a signed URL is produced as well.
	MakePublic bool
	ExpiresIn  time.Duration
}

// UploadResult describes a stored object. SignedURL is set only when the
// upload was private and an expiry was requested.
type UploadResult struct {
	Path      string
	PublicURL string
	SignedURL string
}

// Storage is the object storage client interface. Uploading to an existing
// path overwrites the object (upsert semantics); deleting a missing path is
// best-effort and not guaranteed to fail.
type Storage interface {
	// Upload writes content at the given path.
	Upload(ctx context.Context, r io.Reader, path string, opt UploadOptions) (*UploadResult, error)
	// Delete removes the object at path. Bucket may be empty for the default.
	Delete(ctx context.Context, path string, bucket string) error
	// CreateSignedURL produces a time-limited access URL for path.
	CreateSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
