package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// StockHandler ajustes de stock y kardex.
type StockHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.AdjustStockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  Delta positivo registra una entrada (purchase); negativo es una corrección y puede dejar stock negativo.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, delta"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	stock, err := h.uc.AdjustStock(c.Context(), in.ProductID, in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{Changed: true, ProductID: in.ProductID, Stock: stock})
}

// Movements godoc
// @Summary      Kardex de movimientos
// @Tags         stock
// @Produce      json
// @Param        product_id  query  string  false  "Vacío = todos los productos"
// @Param        date_from   query  string  false  "YYYY-MM-DD"
// @Param        date_to     query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	var f dto.MovementFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	rng, err := usecase.ParseDateRange(f.DateFrom, f.DateTo)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListMovements(c.Context(), f.ProductID, rng)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Delta:      m.Delta,
		StockAfter: m.StockAfter,
		Reason:     m.Reason,
		Reference:  m.Reference,
		CreatedAt:  m.CreatedAt,
	}
}
