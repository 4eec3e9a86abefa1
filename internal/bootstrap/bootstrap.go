// Package bootstrap abre el almacén configurado y construye los casos de uso compartidos por la API y el CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/application/sales"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/copyshop-ledger/pkg/config"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// Services casos de uso listos para inyectar.
type Services struct {
	Store    repository.Store
	Products *usecase.ProductUseCase
	Adjust   *inventory.AdjustStockUseCase
	Sales    *sales.SaleUseCase
	Reports  *sales.ReportUseCase
	Purchase *usecase.PurchaseUseCase
	Expenses *usecase.ExpenseUseCase
}

// OpenStore abre el almacén según STORE_DRIVER y aplica las migraciones.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return postgres.NewStore(pool), nil
	default:
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("abrir SQLite %s: %w", cfg.Store.SQLitePath, err)
		}
		return sqlite.NewStore(db), nil
	}
}

// New abre el almacén y construye los casos de uso. Los ajustes de stock, las altas y las ventas
// comparten el mismo KeyedLock.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	loc := cfg.Shop.Location()
	locks := inventory.NewKeyedLock()
	adjust := inventory.NewAdjustStockUseCase(store, locks, loc, log)
	expenses := usecase.NewExpenseUseCase(store, loc, log)
	saleUC := sales.NewSaleUseCase(store, adjust, expenses, locks, loc, log)

	return &Services{
		Store:    store,
		Products: usecase.NewProductUseCase(store, adjust, locks, log),
		Adjust:   adjust,
		Sales:    saleUC,
		Reports:  sales.NewReportUseCase(saleUC, pdf.NewMarotoReportGenerator(), cfg.Shop.Name, cfg.Shop.Currency),
		Purchase: usecase.NewPurchaseUseCase(store, loc),
		Expenses: expenses,
	}, nil
}

// Close libera el almacén.
func (s *Services) Close() error {
	return s.Store.Close()
}
