package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cliptag/backend/internal/pipeline"
	"cliptag/backend/middleware"
	"cliptag/backend/models"
	"cliptag/backend/utils"
)

// GenerateVoiceover rewrites text into a speech-optimized voiceover script.
// POST /api/generate/voiceover (JSON)
func (h *ApplicationHandler) GenerateVoiceover(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.GenerateVoiceoverRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	item, err := h.Pipeline.GenerateVoiceover(c.Context(), pipeline.VoiceoverRequest{
		UserID:     user.ID,
		Text:       req.Text,
		VoiceStyle: req.VoiceStyle,
	})
	if err != nil {
		return h.respondPipelineError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, item)
}

// GenerateTranscription produces a caption-ready transcription template.
// POST /api/generate/transcription (JSON)
func (h *ApplicationHandler) GenerateTranscription(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.GenerateTranscriptionRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	item, err := h.Pipeline.GenerateTranscription(c.Context(), pipeline.TranscriptionRequest{
		UserID:           user.ID,
		VideoDescription: req.VideoDescription,
	})
	if err != nil {
		return h.respondPipelineError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, item)
}

// GenerateRanking produces an SEO optimization report for a video title.
// POST /api/generate/ranking (JSON)
func (h *ApplicationHandler) GenerateRanking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.GenerateRankingRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	item, err := h.Pipeline.GenerateRanking(c.Context(), pipeline.RankingRequest{
		UserID:     user.ID,
		VideoTitle: req.VideoTitle,
		Niche:      req.Niche,
	})
	if err != nil {
		return h.respondPipelineError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, item)
}

// GenerateSplitScreen produces a dual-panel video concept.
// POST /api/generate/split-screen (JSON)
func (h *ApplicationHandler) GenerateSplitScreen(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.GenerateSplitScreenRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	item, err := h.Pipeline.GenerateSplitScreen(c.Context(), pipeline.SplitScreenRequest{
		UserID:     user.ID,
		VideoTopic: req.VideoTopic,
		Style:      req.Style,
		Duration:   req.Duration,
	})
	if err != nil {
		return h.respondPipelineError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, item)
}
