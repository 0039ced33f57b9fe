// FILE: internal/pkg/serverutils/session_middleware.go
package serverutils

import (
	"salesdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	// LocalsToken is the fiber.Ctx locals key holding the session token.
	LocalsToken = "session_token"
	// LocalsUsername is the fiber.Ctx locals key holding the signed-in user.
	LocalsUsername = "username"
)

// SessionMiddleware authenticates requests by bearer token against the
// session store. Every authenticated request counts as activity and pushes
// the inactivity deadline out.
func SessionMiddleware(sessions service.ISessionService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := BearerToken(ctx)
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    401,
				"message": "Missing token",
			})
		}

		session, ok := sessions.Resolve(token)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    401,
				"message": "Session expired or invalid",
			})
		}

		sessions.Touch(token)

		ctx.Locals(LocalsToken, token)
		ctx.Locals(LocalsUsername, session.Username)
		return ctx.Next()
	}
}

// BearerToken extracts the token from the Authorization header, or empty.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
