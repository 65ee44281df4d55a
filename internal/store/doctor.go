package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"clinic-scheduling-api/internal/clinic"
	"clinic-scheduling-api/internal/model"
)

const doctorCols = `id, name, email, password_hash, specialty, available_slots, created_at, updated_at`

func scanDoctor(row pgx.Row) (*model.Doctor, error) {
	d := &model.Doctor{}
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.PasswordHash, &d.Specialty,
		&d.AvailableSlots, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) DoctorByID(ctx context.Context, id string) (*model.Doctor, error) {
	return scanDoctor(s.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (s *Store) DoctorByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	return scanDoctor(s.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE email = $1`, email))
}

func (s *Store) AllDoctors(ctx context.Context) ([]model.Doctor, error) {
	return s.queryDoctors(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY name`)
}

func (s *Store) DoctorsByName(ctx context.Context, name string) ([]model.Doctor, error) {
	return s.queryDoctors(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE name ILIKE '%' || $1 || '%' ORDER BY name`, name)
}

func (s *Store) DoctorsBySpecialty(ctx context.Context, specialty string) ([]model.Doctor, error) {
	return s.queryDoctors(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE LOWER(specialty) = LOWER($1) ORDER BY name`, specialty)
}

func (s *Store) DoctorsByNameAndSpecialty(ctx context.Context, name, specialty string) ([]model.Doctor, error) {
	return s.queryDoctors(ctx,
		`SELECT `+doctorCols+` FROM doctors
		 WHERE name ILIKE '%' || $1 || '%' AND LOWER(specialty) = LOWER($2)
		 ORDER BY name`, name, specialty)
}

func (s *Store) queryDoctors(ctx context.Context, q string, args ...any) ([]model.Doctor, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Doctor
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.PasswordHash, &d.Specialty,
			&d.AvailableSlots, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) SaveDoctor(ctx context.Context, d *model.Doctor) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO doctors (id, name, email, password_hash, specialty, available_slots)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (id) DO UPDATE
		 SET name=EXCLUDED.name, email=EXCLUDED.email, password_hash=EXCLUDED.password_hash,
		     specialty=EXCLUDED.specialty, available_slots=EXCLUDED.available_slots, updated_at=NOW()`,
		d.ID, d.Name, d.Email, d.PasswordHash, d.Specialty, d.AvailableSlots,
	)
	if isUniqueViolation(err, "doctors_email_key") {
		return clinic.ErrDuplicateDoctorEmail
	}
	return err
}

// DeleteDoctor purges the doctor's appointments and the doctor in one
// transaction.
func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM appointments WHERE doctor_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
