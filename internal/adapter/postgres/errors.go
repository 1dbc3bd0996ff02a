package postgres

import (
	"context"
	"errors"

	"pizza-delivery/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// translate maps storage failures onto the domain error taxonomy. notFound is
// the sentinel returned when the query matched no rows, conflict the one for a
// unique violation. Each repository supplies the sentinels for its own tables.
func translate(err error, notFound, conflict *domain.Error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return conflict
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.WrapError(domain.ErrStorageUnavailable, "query timed out")
	}
	// Connection-level failures are retryable for the caller.
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domain.WrapError(domain.ErrStorageUnavailable, "connection failed")
	}
	return err
}
