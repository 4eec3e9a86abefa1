// Package sales registra ventas confirmadas y calcula los resúmenes de caja.
package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/ledger"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// SaleUseCase registra ventas y descuenta el inventario en una sola transacción.
type SaleUseCase struct {
	store    repository.Store
	adjust   *inventory.AdjustStockUseCase
	expenses *usecase.ExpenseUseCase
	locks    *inventory.KeyedLock
	loc      *time.Location
	log      *logger.Logger
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. locks debe ser el mismo que usa el ajuste de stock.
func NewSaleUseCase(
	store repository.Store,
	adjust *inventory.AdjustStockUseCase,
	expenses *usecase.ExpenseUseCase,
	locks *inventory.KeyedLock,
	loc *time.Location,
	log *logger.Logger,
) *SaleUseCase {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		store:    store,
		adjust:   adjust,
		expenses: expenses,
		locks:    locks,
		loc:      loc,
		log:      log.Component("sales"),
		now:      time.Now,
	}
}

// draft venta de una categoría lista para persistir.
type draft struct {
	category string
	items    []entity.SaleItem
	total    decimal.Decimal
}

// Checkout confirma un carrito: una venta por categoría no vacía (mismo método de pago y timestamp)
// y un ajuste negativo por cada línea de producto. Todo o nada.
func (uc *SaleUseCase) Checkout(ctx context.Context, cart dto.Cart) (*dto.CheckoutResponse, error) {
	if !entity.IsPaymentMethod(cart.PaymentMethod) {
		return nil, domain.Invalid("payment_method", fmt.Sprintf("método de pago desconocido %q", cart.PaymentMethod))
	}
	if len(cart.Stationery)+len(cart.Consumable)+len(cart.Service) == 0 {
		return nil, domain.Invalid("items", "el carrito está vacío")
	}
	var ids []string
	for _, section := range [][]dto.CartProductLine{cart.Stationery, cart.Consumable} {
		for i, line := range section {
			if line.ProductID == "" {
				return nil, domain.Invalid(fmt.Sprintf("items[%d].product_id", i), "requerido")
			}
			ids = append(ids, line.ProductID)
		}
	}

	unlock := uc.locks.Lock(productKeys(ids)...)
	defer unlock()

	at := uc.now().UTC()
	var (
		sales  []*entity.Sale
		grand  decimal.Decimal
		change decimal.Decimal
	)
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		products, err := loadProducts(ctx, repos, ids)
		if err != nil {
			return err
		}

		var drafts []draft
		sections := []struct {
			category string
			lines    []dto.CartProductLine
		}{
			{entity.CategoryStationery, cart.Stationery},
			{entity.CategoryConsumable, cart.Consumable},
		}
		for _, sec := range sections {
			if len(sec.lines) == 0 {
				continue
			}
			items := make([]entity.SaleItem, 0, len(sec.lines))
			for i, line := range sec.lines {
				p := products[line.ProductID]
				if p.Category != sec.category {
					return domain.Invalid(fmt.Sprintf("%s[%d]", sec.category, i),
						fmt.Sprintf("el producto %s no es de la categoría %s", p.Code, sec.category))
				}
				items = append(items, snapshot(p, line))
			}
			d, err := price(sec.category, items)
			if err != nil {
				return err
			}
			drafts = append(drafts, d)
		}
		if len(cart.Service) > 0 {
			items := make([]entity.SaleItem, 0, len(cart.Service))
			for _, line := range cart.Service {
				items = append(items, entity.SaleItem{
					ServiceType: line.ServiceType,
					Price:       line.Price,
					Quantity:    line.Quantity,
					Note:        line.Note,
				})
			}
			d, err := price(entity.CategoryService, items)
			if err != nil {
				return err
			}
			drafts = append(drafts, d)
		}

		grand = decimal.Zero
		for _, d := range drafts {
			grand = grand.Add(d.total)
		}
		if cart.GrandTotal != nil && !cart.GrandTotal.Equal(grand) {
			return domain.Invalid("grand_total", fmt.Sprintf("%s no coincide con la suma de líneas %s", cart.GrandTotal, grand))
		}
		change, err = ledger.Change(cart.PaymentMethod, grand, cart.Received)
		if err != nil {
			return err
		}

		sales, err = uc.record(ctx, repos, cart.PaymentMethod, drafts, products, at)
		return err
	})
	if err != nil {
		return nil, err
	}

	received := cart.Received
	if cart.PaymentMethod == entity.PaymentElectronic {
		received = grand
	}
	uc.log.Info().
		Int("sales", len(sales)).
		Str("payment_method", cart.PaymentMethod).
		Str("total", grand.String()).
		Str("change", change.String()).
		Msg("carrito confirmado")

	out := &dto.CheckoutResponse{GrandTotal: grand, Received: received, Change: change}
	for _, s := range sales {
		out.Sales = append(out.Sales, *toSaleResponse(s, uc.loc))
	}
	return out, nil
}

// Create registra una sola venta con líneas ya valorizadas. total_amount debe ser la suma de las líneas
// y cada total de línea, precio × cantidad. Cada producto debe ser de la categoría de la venta; nombre y
// costo ausentes se toman del producto. Las líneas de producto descuentan stock en la misma transacción.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.IDResponse, error) {
	if !entity.IsPaymentMethod(in.PaymentMethod) {
		return nil, domain.Invalid("payment_method", fmt.Sprintf("método de pago desconocido %q", in.PaymentMethod))
	}
	items := make([]entity.SaleItem, 0, len(in.Items))
	var ids []string
	for _, it := range in.Items {
		item := entity.SaleItem{
			ProductID:   it.ProductID,
			Name:        it.Name,
			ServiceType: it.ServiceType,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Total:       it.Total,
			Note:        it.Note,
		}
		if it.Cost != nil {
			item.Cost = *it.Cost
		}
		items = append(items, item)
		if it.ProductID != "" {
			ids = append(ids, it.ProductID)
		}
	}
	d, err := price(in.Category, items)
	if err != nil {
		return nil, err
	}
	if !in.TotalAmount.Equal(d.total) {
		return nil, domain.Invalid("total_amount", fmt.Sprintf("%s no coincide con la suma de líneas %s", in.TotalAmount, d.total))
	}

	unlock := uc.locks.Lock(productKeys(ids)...)
	defer unlock()

	var sale *entity.Sale
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		products, err := loadProducts(ctx, repos, ids)
		if err != nil {
			return err
		}
		for i := range d.items {
			it := &d.items[i]
			if it.IsService() {
				continue
			}
			p := products[it.ProductID]
			if p.Category != in.Category {
				return domain.Invalid(fmt.Sprintf("items[%d].product_id", i),
					fmt.Sprintf("el producto %s no es de la categoría %s", p.Code, in.Category))
			}
			if it.Name == "" {
				it.Name = p.Name
			}
			if in.Items[i].Cost == nil {
				it.Cost = p.Cost
			}
		}
		sales, err := uc.record(ctx, repos, in.PaymentMethod, []draft{d}, products, uc.now().UTC())
		if err != nil {
			return err
		}
		sale = sales[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", sale.ID).Str("category", sale.Category).Str("total", sale.TotalAmount.String()).Msg("venta registrada")
	return &dto.IDResponse{ID: sale.ID}, nil
}

// record verifica suficiencia, persiste las ventas y descuenta el stock. Corre dentro de la tx del llamador.
func (uc *SaleUseCase) record(
	ctx context.Context,
	repos repository.Repositories,
	method string,
	drafts []draft,
	products map[string]*entity.Product,
	at time.Time,
) ([]*entity.Sale, error) {
	wanted := map[string]int{}
	for _, d := range drafts {
		for _, it := range d.items {
			if !it.IsService() {
				wanted[it.ProductID] += it.Quantity
			}
		}
	}
	for id, qty := range wanted {
		p := products[id]
		if p.Stock-qty < 0 {
			return nil, fmt.Errorf("%w: %s %s tiene %d, se piden %d", domain.ErrInsufficientStock, p.Code, p.Name, p.Stock, qty)
		}
	}

	sales := make([]*entity.Sale, 0, len(drafts))
	for _, d := range drafts {
		s := &entity.Sale{
			Category:      d.category,
			PaymentMethod: method,
			TotalAmount:   d.total,
			Items:         d.items,
			CreatedAt:     at,
		}
		if err := repos.Sales.Create(ctx, s); err != nil {
			return nil, err
		}
		for _, it := range d.items {
			if it.IsService() {
				continue
			}
			if _, err := uc.adjust.AdjustInTx(ctx, repos, inventory.Adjustment{
				ProductID: it.ProductID,
				Delta:     -it.Quantity,
				Reason:    entity.MovementSale,
				Reference: s.ID,
				At:        at,
			}); err != nil {
				return nil, err
			}
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// List ventas filtradas, de la más reciente a la más antigua.
func (uc *SaleUseCase) List(ctx context.Context, f dto.SaleFilter) ([]dto.SaleResponse, error) {
	filter, err := uc.repoFilter(f)
	if err != nil {
		return nil, err
	}
	list, err := uc.store.Repositories().Sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s, uc.loc))
	}
	return out, nil
}

// GetByID obtiene una venta.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.store.Repositories().Sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(s, uc.loc), nil
}

// Delete elimina una venta. El stock descontado no se restaura.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) (*dto.ChangedResponse, error) {
	changed, err := uc.store.Repositories().Sales.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed {
		uc.log.Info().Str("sale_id", id).Msg("venta eliminada")
	}
	return &dto.ChangedResponse{Changed: changed}, nil
}

func (uc *SaleUseCase) repoFilter(f dto.SaleFilter) (repository.SaleFilter, error) {
	if f.Category != "" && !entity.IsSaleCategory(f.Category) {
		return repository.SaleFilter{}, domain.Invalid("category", fmt.Sprintf("categoría de venta desconocida %q", f.Category))
	}
	if f.PaymentMethod != "" && !entity.IsPaymentMethod(f.PaymentMethod) {
		return repository.SaleFilter{}, domain.Invalid("payment_method", fmt.Sprintf("método de pago desconocido %q", f.PaymentMethod))
	}
	rng, err := usecase.ParseDateRange(f.DateFrom, f.DateTo)
	if err != nil {
		return repository.SaleFilter{}, err
	}
	from, to := rng.Bounds(uc.loc)
	return repository.SaleFilter{Category: f.Category, PaymentMethod: f.PaymentMethod, From: from, To: to}, nil
}

func price(category string, items []entity.SaleItem) (draft, error) {
	priced, total, err := ledger.PriceItems(category, items)
	if err != nil {
		return draft{}, err
	}
	return draft{category: category, items: priced, total: total}, nil
}

// snapshot fija nombre, precio y costo de la línea; lo que el carrito no trae se toma del producto actual.
func snapshot(p *entity.Product, line dto.CartProductLine) entity.SaleItem {
	it := entity.SaleItem{
		ProductID: p.ID,
		Name:      line.Name,
		Price:     p.Price,
		Cost:      p.Cost,
		Quantity:  line.Quantity,
	}
	if it.Name == "" {
		it.Name = p.Name
	}
	if line.Price != nil {
		it.Price = *line.Price
	}
	if line.Cost != nil {
		it.Cost = *line.Cost
	}
	return it
}

// loadProducts lee y bloquea los productos de la venta, en orden de ID para no cruzar bloqueos entre cajas.
func loadProducts(ctx context.Context, repos repository.Repositories, ids []string) (map[string]*entity.Product, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	out := make(map[string]*entity.Product, len(ids))
	for _, id := range sorted {
		if _, ok := out[id]; ok {
			continue
		}
		p, err := repos.Products.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		out[id] = p
	}
	return out, nil
}

func productKeys(ids []string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = inventory.ProductKey(id)
	}
	return keys
}

func toSaleResponse(s *entity.Sale, loc *time.Location) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            s.ID,
		Category:      s.Category,
		PaymentMethod: s.PaymentMethod,
		TotalAmount:   s.TotalAmount,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
		CreatedAt:     s.CreatedAt.In(loc),
	}
	for _, it := range s.Items {
		item := dto.SaleItemResponse{
			ProductID:   it.ProductID,
			Name:        it.Name,
			ServiceType: it.ServiceType,
			Price:       it.Price,
			Cost:        it.Cost,
			Quantity:    it.Quantity,
			Total:       it.Total,
			Note:        it.Note,
		}
		if it.ServiceType != "" {
			item.ServiceLabel = entity.ServiceLabel(it.ServiceType)
		}
		out.Items = append(out.Items, item)
	}
	return out
}
