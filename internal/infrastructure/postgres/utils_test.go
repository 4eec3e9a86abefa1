package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestStoreErr(t *testing.T) {
	cause := errors.New("boom")
	err := storeErr("list sales", cause)
	assert.True(t, errors.Is(err, domain.ErrStore))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "postgres: list sales")
	assert.Nil(t, storeErr("noop", nil))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%pulpen%", likePattern("  pulpen "))
	assert.Equal(t, `%50\%\_a\\b%`, likePattern(`50%_a\b`))
}
