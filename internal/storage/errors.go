package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable is returned by every operation of the
	// Unavailable storage, i.e. when the object store was never
	// configured. Callers must fail closed on it.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrUploadFailed wraps backend-reported upload errors.
	ErrUploadFailed = errors.New("upload failed")

	// ErrDeleteFailed wraps backend-reported delete errors.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrSignFailed wraps backend-reported presign errors.
	ErrSignFailed = errors.New("sign failed")

	// ErrUnknownStorageType marks a document whose storage tag is outside
	// the known set. This is a contract violation, fatal to the request.
	ErrUnknownStorageType = errors.New("unknown storage type")
)

// PresignError carries the human-readable message extracted from a non-2xx
// presign exchange response.
type PresignError struct {
	Status  int
	Message string
}

func (e *PresignError) Error() string {
	return fmt.Sprintf("presign failed: %s", e.Message)
}
