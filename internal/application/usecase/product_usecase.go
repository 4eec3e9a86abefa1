package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/ledger"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía ajustes.
type ProductUseCase struct {
	store  repository.Store
	adjust *inventory.AdjustStockUseCase
	locks  *inventory.KeyedLock
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.Store, adjust *inventory.AdjustStockUseCase, locks *inventory.KeyedLock, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{store: store, adjust: adjust, locks: locks, log: log.Component("products")}
}

// Create crea un producto con código generado. El stock inicial se aplica como un ajuste positivo
// (motivo initial) en la misma transacción, así que deja su entrada de stock.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "requerido")
	}
	if err := validatePrices(in.Cost, in.Price); err != nil {
		return nil, err
	}
	if in.Stock < 0 {
		return nil, domain.Invalid("stock", "no puede ser negativo")
	}
	prefix, err := ledger.CodePrefix(in.Category)
	if err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(inventory.CodeKey(prefix))
	defer unlock()

	now := time.Now().UTC()
	product := &entity.Product{
		Name:      name,
		Category:  in.Category,
		Cost:      in.Cost,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		code, err := nextCode(ctx, repos, in.Category)
		if err != nil {
			return err
		}
		product.Code = code
		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}
		if in.Stock > 0 {
			stock, err := uc.adjust.AdjustInTx(ctx, repos, inventory.Adjustment{
				ProductID: product.ID,
				Delta:     in.Stock,
				Reason:    entity.MovementInitial,
				At:        now,
			})
			if err != nil {
				return err
			}
			product.Stock = stock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("code", product.Code).Int("stock", product.Stock).Msg("producto creado")
	return &dto.CreateProductResponse{ID: product.ID, Code: product.Code, Stock: product.Stock}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.store.Repositories().Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, categoría, costo y precio. Un cambio de categoría regenera el código.
// Changed es false si ningún campo difiere del valor guardado.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ChangedResponse, error) {
	keys := []string{inventory.ProductKey(id)}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid("name", "requerido")
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, domain.Invalid("cost", "no puede ser negativo")
	}
	if in.Price != nil && !in.Price.IsPositive() {
		return nil, domain.Invalid("price", "debe ser mayor que cero")
	}
	if in.Category != nil {
		prefix, err := ledger.CodePrefix(*in.Category)
		if err != nil {
			return nil, err
		}
		keys = append(keys, inventory.CodeKey(prefix))
	}

	unlock := uc.locks.Lock(keys...)
	defer unlock()

	changed := false
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		product, err := repos.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil && strings.TrimSpace(*in.Name) != product.Name {
			product.Name = strings.TrimSpace(*in.Name)
			changed = true
		}
		if in.Cost != nil && !in.Cost.Equal(product.Cost) {
			product.Cost = *in.Cost
			changed = true
		}
		if in.Price != nil && !in.Price.Equal(product.Price) {
			product.Price = *in.Price
			changed = true
		}
		if in.Category != nil && *in.Category != product.Category {
			code, err := nextCode(ctx, repos, *in.Category)
			if err != nil {
				return err
			}
			product.Category = *in.Category
			product.Code = code
			changed = true
		}
		if !changed {
			return nil
		}
		return repos.Products.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ChangedResponse{Changed: changed}, nil
}

// Delete elimina un producto. Ventas y entradas que lo referencian se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ChangedResponse, error) {
	unlock := uc.locks.Lock(inventory.ProductKey(id))
	defer unlock()

	changed, err := uc.store.Repositories().Products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed {
		uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	}
	return &dto.ChangedResponse{Changed: changed}, nil
}

// List lista productos por categoría y texto (nombre o código), ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) ([]dto.ProductResponse, error) {
	if f.Category != "" && !entity.IsProductCategory(f.Category) {
		return nil, domain.Invalid("category", "categoría de producto desconocida")
	}
	list, err := uc.store.Repositories().Products.List(ctx, repository.ProductFilter{
		Category: f.Category,
		Search:   strings.TrimSpace(f.Search),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Seed carga el catálogo de muestra si no hay productos. Devuelve cuántos creó.
func (uc *ProductUseCase) Seed(ctx context.Context) (int, error) {
	n, err := uc.store.Repositories().Products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, in := range sampleCatalogue() {
		if _, err := uc.Create(ctx, in); err != nil {
			return i, err
		}
	}
	return len(sampleCatalogue()), nil
}

func nextCode(ctx context.Context, repos repository.Repositories, category string) (string, error) {
	prefix, err := ledger.CodePrefix(category)
	if err != nil {
		return "", err
	}
	codes, err := repos.Products.CodesWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return ledger.NextProductCode(category, codes)
}

func validatePrices(cost, price decimal.Decimal) error {
	if cost.IsNegative() {
		return domain.Invalid("cost", "no puede ser negativo")
	}
	if !price.IsPositive() {
		return domain.Invalid("price", "debe ser mayor que cero")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Cost:      p.Cost,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
