package service

import (
	"context"
	"fmt"
	"net/url"

	"docshare/internal/config"
	"docshare/internal/model"
	"docshare/internal/storage"
)

// FileResolver turns a stored file reference into a fetchable URL according
// to the document's storage tag.
type FileResolver interface {
	Resolve(ctx context.Context, storageType model.StorageType, ref string, isDownload bool) (string, error)
}

// Resolver dispatches on the storage tag:
//
//   - inline-blob: the reference is already a direct CDN URL. Download
//     requests get a download-disposition variant of it; everything else
//     returns the reference unchanged. No network round trip either way.
//   - object-store-key: the key is exchanged for a fresh presigned URL on
//     every call; the raw key is never returned to a caller.
//
// A transport override of "public" is the one escape hatch: object-store
// keys resolve to {publicBaseURL}/{key} instead of going through the presign
// exchange. It applies to exactly that storage tag.
type Resolver struct {
	presigner     storage.Presigner
	transport     string
	publicBaseURL string
}

// NewResolver builds a Resolver. The transport and public base URL come from
// configuration at construction time; the Resolver never reads process-wide
// state.
func NewResolver(presigner storage.Presigner, cfg config.ResolverConfig) *Resolver {
	return &Resolver{
		presigner:     presigner,
		transport:     cfg.Transport,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

var _ FileResolver = (*Resolver)(nil)

// Resolve maps (storageType, ref) to a URL. Unrecognized tags are a
// programming-contract violation and fail with ErrUnknownStorageType.
func (r *Resolver) Resolve(ctx context.Context, storageType model.StorageType, ref string, isDownload bool) (string, error) {
	if r.transport == "public" && storageType == model.StorageTypeObjectKey {
		return r.publicBaseURL + "/" + ref, nil
	}

	switch storageType {
	case model.StorageTypeInlineBlob:
		if isDownload {
			return downloadURL(ref)
		}
		return ref, nil
	case model.StorageTypeObjectKey:
		return r.presigner.SignedURL(ctx, ref)
	default:
		return "", fmt.Errorf("%w: %q", storage.ErrUnknownStorageType, storageType)
	}
}

// downloadURL returns the CDN download-disposition variant of a blob URL by
// adding the download=1 query parameter.
func downloadURL(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse blob url: %w", err)
	}
	q := u.Query()
	q.Set("download", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
