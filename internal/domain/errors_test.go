package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear producto: %w", domain.Invalid("price", "debe ser mayor que cero"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrStore)

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "price", ve.Field)
	assert.Equal(t, "price: debe ser mayor que cero", ve.Error())
}

func TestStoreError_EnvuelveDriver(t *testing.T) {
	driverErr := errors.New("disk I/O error")
	err := domain.NewStoreError("insert sale", driverErr)

	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, "insert sale: disk I/O error", err.Error())
	assert.Nil(t, domain.NewStoreError("noop", nil))
}
