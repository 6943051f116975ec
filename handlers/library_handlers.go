package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cliptag/backend/middleware"
	"cliptag/backend/utils"
)

const libraryPageSize = 100

// GetLibrary lists the caller's generated content, newest first.
// GET /api/library
func (h *ApplicationHandler) GetLibrary(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	items, err := h.Store.ListLibrary(c.Context(), user.ID.String(), libraryPageSize)
	if err != nil {
		h.Logger.WithField("user_id", user.ID).WithError(err).Error("Could not list library")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not retrieve library")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, items)
}

// DeleteLibraryItem removes one owned clip or story-caption record.
// DELETE /api/library/:id
func (h *ApplicationHandler) DeleteLibraryItem(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid item ID format")
	}

	deleted, err := h.Store.DeleteClip(c.Context(), id.String(), user.ID.String())
	if err != nil {
		h.Logger.WithField("item_id", id).WithError(err).Error("Could not delete clip")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not delete item")
	}
	if !deleted {
		deleted, err = h.Store.DeleteStoryCaptions(c.Context(), id.String(), user.ID.String())
		if err != nil {
			h.Logger.WithField("item_id", id).WithError(err).Error("Could not delete story captions")
			return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not delete item")
		}
	}
	if !deleted {
		deleted, err = h.Store.DeleteContentItem(c.Context(), id.String(), user.ID.String())
		if err != nil {
			h.Logger.WithField("item_id", id).WithError(err).Error("Could not delete content item")
			return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not delete item")
		}
	}
	if !deleted {
		return utils.RespondWithError(c, fiber.StatusNotFound, utils.CategoryNotFound, "Item not found")
	}

	h.Logger.WithFields(map[string]interface{}{"item_id": id, "user_id": user.ID}).Info("Library item deleted")
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"message": "Item deleted"})
}
