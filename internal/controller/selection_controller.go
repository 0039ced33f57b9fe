// FILE: internal/controller/selection_controller.go
package controller

import (
	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/pkg/serverutils"
	"salesdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Get(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type selectionController struct {
	sessions service.ISessionService
}

func NewSelectionController(sessions service.ISessionService) ISelectionController {
	return &selectionController{sessions: sessions}
}

func (c *selectionController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/selection")
	h.Use(sessionGuard)
	h.Get("/:catalog", c.Get)
	h.Post("/:catalog/toggle", c.Toggle)
	h.Delete("/:catalog", c.Clear)
}

func (c *selectionController) Get(ctx *fiber.Ctx) error {
	token, _ := ctx.Locals(serverutils.LocalsToken).(string)
	selected, ok := c.sessions.Selection(token, ctx.Params("catalog"))
	if !ok {
		return sessionGone(ctx)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Selection loaded",
		"data":    dto.SelectionResponse{Catalog: ctx.Params("catalog"), Selected: selected},
	})
}

// Toggle flips one product in or out of the selection. Adding past a capped
// catalog's limit is a quiet no-op: the response carries the unchanged set and
// changed=false, the client leaves the checkbox unchecked.
func (c *selectionController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.ProductId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "product_id is required",
		})
	}

	token, _ := ctx.Locals(serverutils.LocalsToken).(string)
	selected, changed := c.sessions.ToggleSelection(token, ctx.Params("catalog"), req.ProductId)
	if selected == nil && !changed {
		if _, ok := c.sessions.Resolve(token); !ok {
			return sessionGone(ctx)
		}
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Selection updated",
		"data":    dto.SelectionResponse{Catalog: ctx.Params("catalog"), Selected: selected, Changed: changed},
	})
}

func (c *selectionController) Clear(ctx *fiber.Ctx) error {
	token, _ := ctx.Locals(serverutils.LocalsToken).(string)
	if !c.sessions.ClearSelection(token, ctx.Params("catalog")) {
		return sessionGone(ctx)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Selection cleared",
		"data":    dto.SelectionResponse{Catalog: ctx.Params("catalog"), Selected: []string{}},
	})
}

func sessionGone(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"code":    401,
		"message": "Session expired or invalid",
	})
}
