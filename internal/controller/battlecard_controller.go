// FILE: internal/controller/battlecard_controller.go
package controller

import (
	"salesdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBattleCardController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Cards(ctx *fiber.Ctx) error
	Descriptions(ctx *fiber.Ctx) error
	SpecBuilder(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type battleCardController struct {
	service service.IBattleCardService
}

func NewBattleCardController(battleCards service.IBattleCardService) IBattleCardController {
	return &battleCardController{service: battleCards}
}

func (c *battleCardController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	r.Get("/battlecards", sessionGuard, c.Cards)
	r.Get("/descriptions", sessionGuard, c.Descriptions)
	r.Get("/specbuilder", sessionGuard, c.SpecBuilder)
	r.Get("/chat", sessionGuard, c.Chat)
}

func (c *battleCardController) Cards(ctx *fiber.Ctx) error {
	cards, err := c.service.Cards(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Cards loaded",
		"data":    cards,
	})
}

func (c *battleCardController) Descriptions(ctx *fiber.Ctx) error {
	res, err := c.service.Descriptions(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Descriptions loaded",
		"data":    res,
	})
}

func (c *battleCardController) SpecBuilder(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Option groups loaded",
		"data":    service.SpecBuilderGroups(),
	})
}

// Chat is a stub until the assistant backend lands.
func (c *battleCardController) Chat(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Coming soon",
		"data":    nil,
	})
}
