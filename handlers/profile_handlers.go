package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cliptag/backend/middleware"
	"cliptag/backend/models"
	"cliptag/backend/utils"
)

// UpdateProfile changes the caller's display name. Omitted fields are left
// untouched; an empty update returns the current profile.
// PUT /api/profile
func (h *ApplicationHandler) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	req := new(models.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}

	if req.Name == nil || utils.SanitizeInput(*req.Name) == "" {
		return utils.RespondWithJSON(c, fiber.StatusOK, user.Response())
	}

	updated, err := h.Store.UpdateUserName(c.Context(), user.ID.String(), utils.SanitizeInput(*req.Name))
	if err != nil {
		h.Logger.WithField("user_id", user.ID).WithError(err).Error("Could not update profile")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not update profile")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, updated.Response())
}
