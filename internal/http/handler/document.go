package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/http/middleware"
	"docshare/internal/service"
)

// DownloadDocument runs the download flow: access check, reference
// resolution, 302 redirect to the resolved URL. Anonymous callers must
// supply a valid linkId.
func DownloadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentID := c.Params("documentId")
		if documentID == "" {
			return writeError(c, fiber.StatusBadRequest, "Document ID is required")
		}
		linkID := c.Query("linkId")
		userID := middleware.UserID(c)

		res, err := docSvc.Download(c.UserContext(), documentID, userID, linkID)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrAccessDenied):
			return writeError(c, fiber.StatusForbidden, "Access denied")
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotAccessible):
			return writeError(c, fiber.StatusNotFound, "Document not accessible")
		default:
			logHandlerError(c, "document_download_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to download document")
		}

		c.Set(fiber.HeaderContentType, res.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		return c.Redirect(res.URL, fiber.StatusFound)
	}
}

// logHandlerError logs full error detail server-side; the caller only ever
// sees the generic message.
func logHandlerError(c *fiber.Ctx, event string, err error) {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	entry := map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"event":      event,
		"request_id": rid,
		"path":       c.Path(),
		"error":      err.Error(),
	}
	if b, merr := json.Marshal(entry); merr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
