package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cliptag/backend/internal/pipeline"
	"cliptag/backend/middleware"
	"cliptag/backend/models"
	"cliptag/backend/utils"
)

// GenerateVideoClip runs the clip-generation pipeline for an uploaded source.
// POST /api/generate/video-clip (form fields video_id, filename, notes,
// aspect_ratio, target_duration)
func (h *ApplicationHandler) GenerateVideoClip(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.GenerateClipRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	clip, err := h.Pipeline.GenerateClip(c.Context(), pipeline.ClipRequest{
		UserID:         user.ID,
		VideoID:        req.VideoID,
		Notes:          req.Notes,
		AspectRatio:    req.AspectRatio,
		TargetDuration: req.TargetDuration,
	})
	if err != nil {
		return h.respondPipelineError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, clip)
}

// GenerateStoryVideo formats a transcript into story captions.
// POST /api/generate/story-video (JSON)
func (h *ApplicationHandler) GenerateStoryVideo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.GenerateStoryRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	result, succeeded, err := h.Pipeline.GenerateStory(c.Context(), pipeline.StoryRequest{
		UserID:     user.ID,
		Transcript: req.Transcript,
		Style:      req.Style,
		Pacing:     req.Length,
		Background: req.Background,
	})
	if err != nil {
		return h.respondPipelineError(c, err)
	}

	// succeeded is a UI-only signal; the persisted record does not carry it.
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"result":    result,
		"succeeded": succeeded,
	})
}

func (h *ApplicationHandler) respondPipelineError(c *fiber.Ctx, err error) error {
	var inputErr *pipeline.InputError
	if errors.As(err, &inputErr) {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, inputErr.Message)
	}

	var procErr *pipeline.ProcessingError
	if errors.As(err, &procErr) {
		h.Logger.WithError(err).Error("Pipeline processing failure")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryProcessing, procErr.Message)
	}

	h.Logger.WithError(err).Error("Unexpected pipeline failure")
	return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Clip generation failed")
}
