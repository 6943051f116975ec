package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cliptag/backend/middleware"
	"cliptag/backend/models"
	"cliptag/backend/utils"
)

const tokenLifetime = 24 * time.Hour

// Register creates an account and returns a bearer token for it.
func (h *ApplicationHandler) Register(c *fiber.Ctx) error {
	req := new(models.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	email := strings.ToLower(utils.SanitizeInput(req.Email))
	existing, err := h.Store.FindUserByEmail(c.Context(), email)
	if err != nil {
		h.Logger.WithError(err).Error("Could not check for existing account")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not create account")
	}
	if existing != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.WithError(err).Error("Could not hash password")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not create account")
	}

	user, err := h.Store.CreateUser(c.Context(), models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         utils.SanitizeInput(req.Name),
		PasswordHash: string(hash),
		Plan:         "free",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		h.Logger.WithError(err).Error("Could not insert user")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not create account")
	}

	token, err := h.signToken(user)
	if err != nil {
		h.Logger.WithError(err).Error("Could not sign token")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not create account")
	}

	h.Logger.WithField("user_id", user.ID).Info("User registered")
	return utils.RespondWithJSON(c, fiber.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Response(),
	})
}

// Login verifies credentials and returns a fresh bearer token.
func (h *ApplicationHandler) Login(c *fiber.Ctx) error {
	req := new(models.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.CategoryInvalidInput, utils.FormatValidationErrors(err))
	}

	user, err := h.Store.FindUserByEmail(c.Context(), strings.ToLower(utils.SanitizeInput(req.Email)))
	if err != nil {
		h.Logger.WithError(err).Error("Could not look up account")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not log in")
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return utils.RespondWithError(c, fiber.StatusUnauthorized, utils.CategoryUnauthorized, "Invalid credentials")
	}

	token, err := h.signToken(*user)
	if err != nil {
		h.Logger.WithError(err).Error("Could not sign token")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not log in")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Response(),
	})
}

// Me returns the authenticated user's profile.
func (h *ApplicationHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return utils.RespondWithJSON(c, fiber.StatusOK, user.Response())
}

func (h *ApplicationHandler) signToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.Config.JWTSecret))
}
