// internal/adapters/db/pgerrors.go
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

// Postgres error codes the store distinguishes. Everything else in class 23
// is still a constraint failure; class 08 is a connection failure.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// translateError maps driver failures onto the domain error taxonomy so
// nothing above the adapter ever matches on pg error codes or strings.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: duplicate value for %s: %w", op, pgErr.ConstraintName, domain.ErrConstraintViolation)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: missing referenced row for %s: %w", op, pgErr.ConstraintName, domain.ErrConstraintViolation)
		case pgNotNullViolation, pgCheckViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, domain.ErrConstraintViolation)
		}
		if pgErr.Code != "" && pgErr.Code[:2] == "08" {
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, domain.ErrStoreUnavailable)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %v: %w", op, connErr, domain.ErrStoreUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}
