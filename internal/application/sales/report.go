package sales

import (
	"context"
	"time"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
)

// ReportGenerator convierte un reporte de ventas en un documento (PDF).
type ReportGenerator interface {
	GenerateSalesReport(ctx context.Context, report *dto.SalesReport) ([]byte, error)
}

// ReportUseCase arma reportes de ventas con los datos de la tienda.
type ReportUseCase struct {
	sales    *SaleUseCase
	gen      ReportGenerator
	shopName string
	currency string
}

// NewReportUseCase construye el caso de uso de reportes. gen puede ser nil si solo se usa Build.
func NewReportUseCase(sales *SaleUseCase, gen ReportGenerator, shopName, currency string) *ReportUseCase {
	return &ReportUseCase{sales: sales, gen: gen, shopName: shopName, currency: currency}
}

// Build reúne resumen y detalle de ventas para el filtro.
func (uc *ReportUseCase) Build(ctx context.Context, f dto.SaleFilter) (*dto.SalesReport, error) {
	summary, list, err := uc.sales.Report(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.SalesReport{
		ShopName:    uc.shopName,
		Currency:    uc.currency,
		GeneratedAt: time.Now().In(uc.sales.loc),
		Summary:     summary,
		Sales:       list,
	}, nil
}

// PDF genera el reporte del filtro como PDF.
func (uc *ReportUseCase) PDF(ctx context.Context, f dto.SaleFilter) ([]byte, error) {
	report, err := uc.Build(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateSalesReport(ctx, report)
}
