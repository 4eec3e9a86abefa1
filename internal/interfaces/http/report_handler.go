package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/sales"
)

// ReportHandler reportes descargables.
type ReportHandler struct {
	uc *sales.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *sales.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        category        query  string  false  "stationery | consumable | service"
// @Param        payment_method  query  string  false  "cash | electronic"
// @Param        date_from       query  string  false  "YYYY-MM-DD"
// @Param        date_to         query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	var f dto.SaleFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	doc, err := h.uc.PDF(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="ventas-%s.pdf"`, time.Now().Format("20060102-150405")))
	return c.Send(doc)
}
