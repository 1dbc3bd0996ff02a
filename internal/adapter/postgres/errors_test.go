package postgres

import (
	"context"
	"fmt"
	"testing"

	"pizza-delivery/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, translate(nil, domain.ErrOrderNotFound, domain.ErrOrderIDCollision))
}

func TestTranslateNoRows(t *testing.T) {
	err := translate(pgx.ErrNoRows, domain.ErrCustomerNotFound, domain.ErrCustomerExists)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestTranslateUniqueViolation(t *testing.T) {
	// Each repository reports the conflict for its own tables, so a duplicate
	// customer phone number must not surface as an order id collision.
	tests := []struct {
		name     string
		conflict *domain.Error
	}{
		{"orders", domain.ErrOrderIDCollision},
		{"customers", domain.ErrCustomerExists},
		{"restaurants", domain.ErrRestaurantExists},
		{"menu_items", domain.ErrItemExists},
		{"drivers", domain.ErrDriverExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: uniqueViolation}
			err := translate(fmt.Errorf("insert failed: %w", pgErr), domain.ErrOrderNotFound, tt.conflict)
			require.ErrorIs(t, err, tt.conflict)
			assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		})
	}
}

func TestTranslateContextTimeout(t *testing.T) {
	err := translate(context.DeadlineExceeded, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, domain.KindUnavailable, domain.KindOf(err))
}

func TestTranslatePassesThroughUnknownErrors(t *testing.T) {
	cause := fmt.Errorf("syntax error")
	err := translate(cause, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	assert.Equal(t, cause, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
