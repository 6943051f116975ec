package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"cliptag/backend/models"
	"cliptag/backend/utils"
)

const userLocalKey = "current_user"

// UserFinder loads an account by its identifier. Implemented by the store.
type UserFinder interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// Protected verifies the bearer token and attaches the authenticated user to
// the request context. Requests without a valid token never reach the handler.
func Protected(secret string, users UserFinder, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, utils.CategoryUnauthorized, "Missing bearer token")
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, utils.CategoryUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, utils.CategoryUnauthorized, "Invalid token claims")
		}
		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, utils.CategoryUnauthorized, "Invalid token claims")
		}

		user, err := users.FindUserByID(c.Context(), userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("Failed to load user for token")
			return utils.RespondWithError(c, fiber.StatusInternalServerError, utils.CategoryInternal, "Could not verify user")
		}
		if user == nil {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, utils.CategoryUnauthorized, "User not found")
		}

		c.Locals(userLocalKey, *user)
		return c.Next()
	}
}

// CurrentUser returns the user attached by Protected. The zero value is
// returned only if the middleware did not run, which is a routing bug.
func CurrentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(userLocalKey).(models.User)
	return user
}
