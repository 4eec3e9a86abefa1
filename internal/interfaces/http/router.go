package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/application/sales"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	AdjustUC   *inventory.AdjustStockUseCase
	SaleUC     *sales.SaleUseCase
	ReportUC   *sales.ReportUseCase
	PurchaseUC *usecase.PurchaseUseCase
	ExpenseUC  *usecase.ExpenseUseCase
}

// NewApp crea la aplicación Fiber con recover, log de peticiones y /health.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: errorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API. Sin autenticación: un solo puesto de caja en red local.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/seed", productHandler.Seed)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.AdjustUC)
	stock.Post("/adjust", stockHandler.Adjust)
	stock.Get("/movements", stockHandler.Movements)

	// Sales (rutas fijas antes de /:id)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/checkout", saleHandler.Checkout)
	salesGroup.Get("/summary", saleHandler.Summary)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Purchases (solo lectura: se crean con ajustes positivos)
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/summary", purchaseHandler.Summary)
	purchases.Get("/", purchaseHandler.List)

	// Expenses
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/summary", expenseHandler.Summary)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales.pdf", reportHandler.SalesPDF)
}
