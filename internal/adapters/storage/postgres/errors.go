package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"vet-clinic/internal/domain/owners"
)

// mapError traduce errores del driver a los sentinels del dominio:
// class 23 (integrity constraint violation) => ErrConstraint,
// sql.ErrNoRows => ErrNotFound. El resto pasa tal cual.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return owners.ErrNotFound
	}
	pgErr := new(pgconn.PgError)
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return owners.ErrConstraint
	}
	return err
}
