package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-scheduling-api/internal/clinic"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var (
	_ clinic.DoctorDirectory  = (*Store)(nil)
	_ clinic.PatientDirectory = (*Store)(nil)
	_ clinic.AppointmentStore = (*Store)(nil)
)

// isUniqueViolation reports whether err is a 23505 on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
