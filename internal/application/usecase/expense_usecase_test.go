package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
)

func TestExpense_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.expenses.Create(ctx, dto.ExpenseRequest{Description: " Tinta printer ", Amount: d("75000")})
	require.NoError(t, err)
	assert.Equal(t, "Tinta printer", created.Description)
	assert.Equal(t, date.Today(time.UTC), created.Date, "sin fecha = hoy")

	res, err := f.expenses.Update(ctx, created.ID, dto.ExpenseRequest{Description: "Tinta", Amount: d("80000"), Date: date.MustParse("2024-03-10")})
	require.NoError(t, err)
	assert.True(t, res.Changed)

	got, err := f.expenses.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(d("80000")))
	assert.Equal(t, "2024-03-10", got.Date.String())

	_, err = f.expenses.Update(ctx, "no-existe", dto.ExpenseRequest{Description: "x", Amount: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	del, err := f.expenses.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, del.Changed)
	del, err = f.expenses.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, del.Changed)
}

func TestExpense_UpdateSinFechaConservaLaGuardada(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.expenses.Create(ctx, dto.ExpenseRequest{Description: "Kertas HVS", Amount: d("50000"), Date: date.MustParse("2024-03-09")})
	require.NoError(t, err)

	res, err := f.expenses.Update(ctx, created.ID, dto.ExpenseRequest{Description: "Kertas HVS A4", Amount: d("55000")})
	require.NoError(t, err)
	assert.True(t, res.Changed)

	got, err := f.expenses.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kertas HVS A4", got.Description)
	assert.True(t, got.Amount.Equal(d("55000")))
	assert.Equal(t, "2024-03-09", got.Date.String())

	sum, err := f.expenses.Summary(ctx, dto.ExpenseFilter{DateFrom: "2024-03-09", DateTo: "2024-03-09"})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
}

func TestExpense_Validacion(t *testing.T) {
	f := newFixture(t)
	_, err := f.expenses.Create(context.Background(), dto.ExpenseRequest{Amount: d("1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = f.expenses.Create(context.Background(), dto.ExpenseRequest{Description: "Kertas", Amount: d("0")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestExpense_ListYSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, e := range []dto.ExpenseRequest{
		{Description: "Kertas HVS", Amount: d("50000"), Date: date.MustParse("2024-03-09")},
		{Description: "Tinta", Amount: d("30000"), Date: date.MustParse("2024-03-10")},
		{Description: "Servis mesin", Amount: d("20000"), Date: date.MustParse("2024-03-11")},
	} {
		_, err := f.expenses.Create(ctx, e)
		require.NoError(t, err)
	}

	sum, err := f.expenses.Summary(ctx, dto.ExpenseFilter{DateFrom: "2024-03-10", DateTo: "2024-03-11"})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(d("50000")))

	list, err := f.expenses.List(ctx, dto.ExpenseFilter{Search: "kertas"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	total, err := f.expenses.Total(ctx, date.Range{})
	require.NoError(t, err)
	assert.True(t, total.Equal(d("100000")))
}
