package errs

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var ErrConstraintViolation = errors.New("constraint violation")

// ConvertError maps driver-level failures onto stable store errors so
// callers never branch on driver types.
func ConvertError(err error) error {
	if err == nil {
		return nil
	}
	if is23505(err) {
		return ErrConstraintViolation
	}
	return err
}

func is23505(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
