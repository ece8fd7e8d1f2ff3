package model

import "time"

// StorageType tags where a document's file reference lives and how it must be
// resolved into a fetchable URL.
type StorageType string

const (
	// StorageTypeInlineBlob means File is already a direct CDN URL.
	StorageTypeInlineBlob StorageType = "inline-blob"
	// StorageTypeObjectKey means File is an object-store key that must be
	// exchanged for a presigned URL before it can be handed to a caller.
	StorageTypeObjectKey StorageType = "object-store-key"
)

// Document represents a shared file owned by a team.
// This is a pure domain model with no database-specific dependencies or tags.
//
// Invariant: StorageType must match the location semantics of File. An
// object-store key must never be returned to a caller as if it were a URL.
type Document struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	File        string      `json:"file"`
	Type        string      `json:"type"`
	StorageType StorageType `json:"storage_type"`
	TeamID      string      `json:"team_id"`
	Size        int64       `json:"size"`
	NumPages    int         `json:"num_pages"`
	CreatedAt   time.Time   `json:"created_at"`
}
