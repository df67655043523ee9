// internal/adapters/db/pgerrors_test.go
package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil_passes_through",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no_rows_is_not_found",
			err:      pgx.ErrNoRows,
			expected: domain.ErrNotFound,
		},
		{
			name:     "unique_violation_is_constraint",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "clients_email_key"},
			expected: domain.ErrConstraintViolation,
		},
		{
			name:     "foreign_key_violation_is_constraint",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "sales_product_id_fkey"},
			expected: domain.ErrConstraintViolation,
		},
		{
			name:     "check_violation_is_constraint",
			err:      &pgconn.PgError{Code: "23514", Message: "quantity must be positive"},
			expected: domain.ErrConstraintViolation,
		},
		{
			name:     "connection_failure_is_store_unavailable",
			err:      &pgconn.PgError{Code: "08006", Message: "connection failure"},
			expected: domain.ErrStoreUnavailable,
		},
		{
			name:     "unknown_errors_pass_through_wrapped",
			err:      errors.New("something odd"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError("test op", tt.err)

			if tt.err == nil {
				assert.NoError(t, got)
				return
			}

			require.Error(t, got)
			assert.Contains(t, got.Error(), "test op")
			if tt.expected != nil {
				assert.ErrorIs(t, got, tt.expected)
			}
		})
	}
}

func TestTranslateErrorKeepsOriginalChain(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "clients_email_key"}
	got := translateError("create client", pgErr)

	// The message names the violated constraint for log readers.
	assert.Contains(t, got.Error(), "clients_email_key")
	assert.ErrorIs(t, got, domain.ErrConstraintViolation)
}
