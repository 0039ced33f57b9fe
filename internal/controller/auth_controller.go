// FILE: internal/controller/auth_controller.go
package controller

import (
	"errors"

	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/pkg/serverutils"
	"salesdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	Activity(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	sessions service.ISessionService
}

func NewAuthController(authService service.IAuthService, sessions service.ISessionService) IAuthController {
	return &authController{service: authService, sessions: sessions}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
	h.Post("/activity", c.Activity)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		status := fiber.StatusUnauthorized
		if !errors.Is(err, service.ErrInvalidCredentials) {
			status = fiber.StatusBadGateway
		}
		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

// Logout always reports success to the client. A token that is already dead
// is a logout that already happened.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	if token := serverutils.BearerToken(ctx); token != "" {
		c.service.Logout(ctx.Context(), token)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out successfully",
		"data":    nil,
	})
}

// Session restores identity on page load. A dead token answers 401 but still
// carries the auto_logged_out flag so the client can show the inactivity
// banner once.
func (c *authController) Session(ctx *fiber.Ctx) error {
	token := serverutils.BearerToken(ctx)
	res := c.service.Session(ctx.Context(), token)
	if !res.Authenticated {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Not authenticated",
			"data":    res,
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Session active",
		"data":    res,
	})
}

// Activity is the client's batched interaction ping; it only refreshes the
// inactivity deadline.
func (c *authController) Activity(ctx *fiber.Ctx) error {
	token := serverutils.BearerToken(ctx)
	if token == "" || !c.sessions.Touch(token) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Session expired or invalid",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Activity recorded",
		"data":    nil,
	})
}
