package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/ledger"
)

func TestNextProductCode_Primero(t *testing.T) {
	code, err := ledger.NextProductCode(entity.CategoryStationery, nil)
	require.NoError(t, err)
	assert.Equal(t, "ATK-001", code)

	code, err = ledger.NextProductCode(entity.CategoryConsumable, []string{"ATK-004"})
	require.NoError(t, err)
	assert.Equal(t, "MM-001", code, "los códigos de otra categoría no cuentan")
}

func TestNextProductCode_MayorMasUno(t *testing.T) {
	existing := []string{"ATK-002", "ATK-010", "ATK-007", "MM-050", "ATK-x1", "ATK-", "P001"}
	code, err := ledger.NextProductCode(entity.CategoryStationery, existing)
	require.NoError(t, err)
	assert.Equal(t, "ATK-011", code)
}

func TestNextProductCode_MasDeTresDigitos(t *testing.T) {
	code, err := ledger.NextProductCode(entity.CategoryConsumable, []string{"MM-999"})
	require.NoError(t, err)
	assert.Equal(t, "MM-1000", code)
}

func TestCodePrefix_CategoriaInvalida(t *testing.T) {
	_, err := ledger.CodePrefix(entity.CategoryService)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
