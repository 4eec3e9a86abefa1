package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
)

// PurchaseHandler consultas de entradas de stock.
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas
// @Description  Nombre y costo se toman del producto actual.
// @Tags         purchases
// @Produce      json
// @Param        category   query  string  false  "stationery | consumable"
// @Param        search     query  string  false  "Busca en nombre y código"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var f dto.PurchaseFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales de entradas
// @Tags         purchases
// @Produce      json
// @Success      200  {object}  dto.PurchaseSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchases/summary [get]
func (h *PurchaseHandler) Summary(c *fiber.Ctx) error {
	var f dto.PurchaseFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.Summary(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
