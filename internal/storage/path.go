package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GeneratePath derives a storage key for an uploaded file as
// {ownerID}/{timestamp}-{random}.{ext}. The owner prefix rules out collisions
// across concurrent uploads from different owners; the timestamp plus random
// id makes a same-owner collision vanishingly unlikely. Paths are never
// reused as identifiers elsewhere.
func GeneratePath(originalName, ownerID string) string {
	disambiguator := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		return fmt.Sprintf("%s/%s", ownerID, disambiguator)
	}
	return fmt.Sprintf("%s/%s.%s", ownerID, disambiguator, ext)
}

// mimeTypes maps lower-cased file extensions to MIME types.
var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"txt":  "text/plain",
	"csv":  "text/csv",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"mp4":  "video/mp4",
	"avi":  "video/x-msvideo",
	"zip":  "application/zip",
}

// MIMEType returns the MIME type for a file extension or path. Unknown
// extensions fall back to application/octet-stream.
func MIMEType(pathOrExt string) string {
	ext := pathOrExt
	if i := strings.LastIndex(pathOrExt, "."); i >= 0 {
		ext = pathOrExt[i+1:]
	}
	if mt, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mt
	}
	return "application/octet-stream"
}
