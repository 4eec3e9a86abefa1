package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// ExpenseUseCase casos de uso para gastos operativos.
type ExpenseUseCase struct {
	repos repository.Repositories
	loc   *time.Location
	log   *logger.Logger
}

// NewExpenseUseCase construye el caso de uso. loc define el "hoy" por defecto de un gasto.
func NewExpenseUseCase(store repository.Store, loc *time.Location, log *logger.Logger) *ExpenseUseCase {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ExpenseUseCase{repos: store.Repositories(), loc: loc, log: log.Component("expenses")}
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repos.Expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.log.Info().Str("expense_id", e.ID).Str("amount", e.Amount.String()).Msg("gasto registrado")
	return toExpenseResponse(e), nil
}

// Update reescribe un gasto existente. Sin fecha en la petición se conserva la guardada.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ChangedResponse, error) {
	e, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		current, err := uc.repos.Expenses.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, domain.ErrNotFound
		}
		e.Date = current.Date
	}
	e.ID = id
	changed, err := uc.repos.Expenses.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.ErrNotFound
	}
	return &dto.ChangedResponse{Changed: true}, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) (*dto.ChangedResponse, error) {
	changed, err := uc.repos.Expenses.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ChangedResponse{Changed: changed}, nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.repos.Expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(e), nil
}

// List gastos del período, por fecha descendente.
func (uc *ExpenseUseCase) List(ctx context.Context, f dto.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	list, err := uc.list(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return items, nil
}

// Summary total de gastos del período.
func (uc *ExpenseUseCase) Summary(ctx context.Context, f dto.ExpenseFilter) (*dto.ExpenseSummaryResponse, error) {
	list, err := uc.list(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseSummaryResponse{TotalAmount: sumExpenses(list), Count: len(list)}, nil
}

// Total suma de gastos en el rango (costo de la categoría de servicios en los reportes).
func (uc *ExpenseUseCase) Total(ctx context.Context, rng date.Range) (decimal.Decimal, error) {
	list, err := uc.repos.Expenses.List(ctx, repository.ExpenseFilter{Range: rng})
	if err != nil {
		return decimal.Zero, err
	}
	return sumExpenses(list), nil
}

func (uc *ExpenseUseCase) list(ctx context.Context, f dto.ExpenseFilter) ([]*entity.Expense, error) {
	rng, err := ParseDateRange(f.DateFrom, f.DateTo)
	if err != nil {
		return nil, err
	}
	return uc.repos.Expenses.List(ctx, repository.ExpenseFilter{Range: rng, Search: strings.TrimSpace(f.Search)})
}

func (uc *ExpenseUseCase) fromRequest(in dto.ExpenseRequest) (*entity.Expense, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.Invalid("description", "requerido")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "debe ser mayor que cero")
	}
	day := in.Date
	if day.IsZero() {
		day = date.Today(uc.loc)
	}
	return &entity.Expense{Description: desc, Amount: in.Amount, Date: day}, nil
}

func sumExpenses(list []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Amount)
	}
	return total
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
