package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"clinic-scheduling-api/internal/model"
)

func (s *Store) SavePrescription(ctx context.Context, p *model.Prescription) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO prescriptions (id, appointment_id, patient_name, medication, dosage, doctor_notes)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.AppointmentID, p.PatientName, p.Medication, p.Dosage, p.DoctorNotes,
	)
	return err
}

func (s *Store) PrescriptionByAppointment(ctx context.Context, appointmentID string) (*model.Prescription, error) {
	p := &model.Prescription{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, appointment_id, patient_name, medication, dosage, doctor_notes, created_at
		 FROM prescriptions WHERE appointment_id = $1`, appointmentID,
	).Scan(&p.ID, &p.AppointmentID, &p.PatientName, &p.Medication, &p.Dosage, &p.DoctorNotes, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
