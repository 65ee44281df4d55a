package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"clinic-scheduling-api/internal/clinic"
	"clinic-scheduling-api/internal/model"
)

const patientCols = `id, name, email, phone, password_hash, created_at, updated_at`

func scanPatient(row pgx.Row) (*model.Patient, error) {
	p := &model.Patient{}
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) PatientByEmail(ctx context.Context, email string) (*model.Patient, error) {
	return scanPatient(s.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE email = $1`, email))
}

func (s *Store) PatientByEmailOrPhone(ctx context.Context, email, phone string) (*model.Patient, error) {
	return scanPatient(s.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE email = $1 OR phone = $2 LIMIT 1`, email, phone))
}

func (s *Store) SavePatient(ctx context.Context, p *model.Patient) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO patients (id, name, email, phone, password_hash)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE
		 SET name=EXCLUDED.name, email=EXCLUDED.email, phone=EXCLUDED.phone,
		     password_hash=EXCLUDED.password_hash, updated_at=NOW()`,
		p.ID, p.Name, p.Email, p.Phone, p.PasswordHash,
	)
	if isUniqueViolation(err, "patients_email_key") || isUniqueViolation(err, "patients_phone_key") {
		return clinic.ErrDuplicatePatient
	}
	return err
}
