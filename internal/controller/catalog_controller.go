// FILE: internal/controller/catalog_controller.go
package controller

import (
	"errors"

	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/serverutils"
	"salesdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Compare(ctx *fiber.Ctx) error
	Sheet(ctx *fiber.Ctx) error
	SheetRaw(ctx *fiber.Ctx) error
	Quote(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogs service.ICatalogService
	sessions service.ISessionService
}

func NewCatalogController(catalogs service.ICatalogService, sessions service.ISessionService) ICatalogController {
	return &catalogController{catalogs: catalogs, sessions: sessions}
}

func (c *catalogController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/catalog")
	h.Use(sessionGuard)
	h.Get("/compare", c.Compare)
	h.Get("/sheet/:name", c.Sheet)
	h.Get("/sheet/:name/raw", c.SheetRaw)
	h.Post("/quote", c.Quote)
}

func (c *catalogController) Compare(ctx *fiber.Ctx) error {
	res, err := c.catalogs.CompareCatalog(ctx.Context())
	if err != nil {
		return catalogError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Catalog loaded",
		"data":    res,
	})
}

func (c *catalogController) Sheet(ctx *fiber.Ctx) error {
	res, err := c.catalogs.SheetCatalog(ctx.Context(), ctx.Params("name"))
	if err != nil {
		return catalogError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Catalog loaded",
		"data":    res,
	})
}

func (c *catalogController) SheetRaw(ctx *fiber.Ctx) error {
	res, err := c.catalogs.RawMatrix(ctx.Context(), ctx.Params("name"))
	if err != nil {
		return catalogError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Rows loaded",
		"data":    res,
	})
}

// Quote renders the session's current selection in the requested catalog as
// clipboard-ready text. The client owns the actual clipboard write.
func (c *catalogController) Quote(ctx *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.Catalog == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "catalog is required",
		})
	}

	token, _ := ctx.Locals(serverutils.LocalsToken).(string)
	selected, ok := c.sessions.Selection(token, req.Catalog)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Session expired or invalid",
		})
	}

	res, err := c.catalogs.QuoteText(ctx.Context(), req.Catalog, selected)
	if err != nil {
		return catalogError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Quote generated",
		"data":    res,
	})
}

func catalogError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidSheetName):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	case errors.Is(err, mapper.ErrNoData):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": err.Error(),
		})
	default:
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
}
