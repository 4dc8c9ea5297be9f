package middleware

import (
	"biophilic/backend/config"
	"biophilic/backend/database"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID    = "userID"
	LocalSessionID = "sessionID"
)

// AuthMiddleware accepts a request only when its token names a live session
// that belongs to the user in the token. The acting user id is stored in
// c.Locals(LocalUserID).
func AuthMiddleware(store *database.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authenticate(c, store, cfg)
	}
}

// OptionalAuth lets requests without an Authorization header through as
// anonymous, with UserID(c) empty. A header that is present must still pass
// every AuthMiddleware check.
func OptionalAuth(store *database.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return authenticate(c, store, cfg)
	}
}

func authenticate(c *fiber.Ctx, store *database.Store, cfg *config.Config) error {
	claims, err := utils.ExtractClaimsFromToken(c, cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	userID, ok, err := store.ResolveSession(c.UserContext(), claims.SessionID)
	if err != nil {
		return utils.InternalServerError(c, "Could not resolve session")
	}
	if !ok || userID != claims.UserID {
		return utils.Unauthorized(c, "Session expired")
	}

	c.Locals(LocalUserID, userID)
	c.Locals(LocalSessionID, claims.SessionID)
	return c.Next()
}

// RequireRole must run after AuthMiddleware.
func RequireRole(store *database.Store, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := store.GetUserByID(UserID(c))
		if user == nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Forbidden - insufficient role")
	}
}

func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalSessionID).(string)
	return id
}
