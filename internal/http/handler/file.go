package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/service"
	"docshare/internal/storage"
)

// UploadFile accepts one multipart "file" field and stores it for the team
// given by the teamId query parameter. The size cap is enforced before any
// storage write. Multipart temp files are released by the framework when the
// request ends, success or not.
func UploadFile(docSvc service.DocumentService, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teamID := c.Query("teamId")
		if teamID == "" {
			return writeError(c, fiber.StatusBadRequest, "Team ID is required")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No file provided")
		}
		if maxBytes > 0 && fh.Size > maxBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "File too large")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Cannot open uploaded file")
		}
		defer f.Close()

		contentType := fh.Header.Get(fiber.HeaderContentType)

		desc, err := docSvc.Upload(c.UserContext(), f, fh.Filename, contentType, fh.Size, teamID)
		if err != nil {
			logHandlerError(c, "file_upload_failed", err)
			return writeErrorMessage(c, fiber.StatusInternalServerError, "Upload failed", "internal server error")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data":    desc,
		})
	}
}

type presignBody struct {
	Key string `json:"key"`
}

// PresignGetURL exchanges an object-store key for a short-lived signed URL.
// Error bodies use {message} so exchange clients can extract it. Auth is the
// caller middleware's concern (internal bearer or session, depending on the
// route).
func PresignGetURL(store storage.Storage, expiry time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body presignBody
		if err := c.BodyParser(&body); err != nil || body.Key == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "key is required"})
		}

		url, err := store.CreateSignedURL(c.UserContext(), body.Key, expiry)
		if err != nil {
			if errors.Is(err, storage.ErrBackendUnavailable) {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "storage backend unavailable"})
			}
			logHandlerError(c, "presign_failed", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create signed url"})
		}

		return c.JSON(fiber.Map{"url": url})
	}
}
