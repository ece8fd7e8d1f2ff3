package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import (
	"context"

	"docshare/internal/model"
)

// DocumentAccess is the read-only view the access gate needs: the owning
// team's member ids and the share-link ids associated with a document.
type DocumentAccess struct {
	DocumentID string
	TeamID     string
	MemberIDs  []string
	LinkIDs    []string
}

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// FindAccess returns the membership and link ids needed for an access
	// check. Returns sql.ErrNoRows when the document does not exist.
	FindAccess(ctx context.Context, id string) (*DocumentAccess, error)

	// UpdateFile replaces the stored-file reference (re-upload).
	UpdateFile(ctx context.Context, id, file string) error

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
