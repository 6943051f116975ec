package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cliptag/backend/middleware"
	"cliptag/backend/models"
	"cliptag/backend/utils"
)

// Uploads longer than this are rejected and the stored file removed.
const maxUploadDuration = 180.0

// Accepted upload extensions and the content type recorded for each.
var allowedUploadTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
}

// UploadVideo stores a raw source video, probes its duration and records it.
// POST /api/upload/video (multipart field "file")
func (h *ApplicationHandler) UploadVideo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	file, err := c.FormFile("file")
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Missing 'file' upload field")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedUploadTypes[ext]
	if !ok {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput,
			"Unsupported video format: only mp4, mov, avi and webm are accepted")
	}

	id := uuid.New()
	storedName := id.String() + ext
	storedPath := filepath.Join(h.Config.UploadDir, storedName)

	if err := c.SaveFile(file, storedPath); err != nil {
		h.Logger.WithError(err).Error("Could not save uploaded file")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not store uploaded file")
	}

	duration := h.Prober.Probe(c.Context(), storedPath)
	if duration > maxUploadDuration {
		// Reject oversized sources without leaving the file behind.
		if err := os.Remove(storedPath); err != nil {
			h.Logger.WithField("path", storedPath).WithError(err).Warn("Could not remove rejected upload")
		}
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput,
			fmt.Sprintf("Video is %.0f seconds long; the maximum is %.0f seconds", duration, maxUploadDuration))
	}

	video := models.SourceVideo{
		ID:          id,
		UserID:      user.ID,
		Filename:    storedName,
		ContentType: contentType,
		Duration:    duration,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.Store.CreateSourceVideo(c.Context(), video); err != nil {
		h.Logger.WithError(err).Error("Could not persist source video record")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not record upload")
	}

	h.Logger.WithFields(map[string]interface{}{
		"video_id": id,
		"user_id":  user.ID,
		"duration": duration,
	}).Info("Source video uploaded")

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"id":       id,
		"filename": storedName,
		"duration": duration,
		"url":      "/uploads/" + storedName,
	})
}
