package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"clinic-scheduling-api/internal/clinic"
	"clinic-scheduling-api/internal/model"
)

// doctor and patient names are joined on every read so list filters never
// need a second round trip
const apptSelect = `
	SELECT a.id, a.doctor_id, a.patient_id, a.appointment_time, a.status,
	       d.name, p.name, a.created_at, a.updated_at
	FROM appointments a
	JOIN doctors d ON d.id = a.doctor_id
	JOIN patients p ON p.id = a.patient_id`

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := row.Scan(&a.ID, &a.DoctorID, &a.PatientID, &a.AppointmentTime, &a.Status,
		&a.DoctorName, &a.PatientName, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	return scanAppointment(s.pool.QueryRow(ctx, apptSelect+` WHERE a.id = $1`, id))
}

func (s *Store) SaveAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, doctor_id, patient_id, appointment_time, status)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE
		 SET doctor_id=EXCLUDED.doctor_id, patient_id=EXCLUDED.patient_id,
		     appointment_time=EXCLUDED.appointment_time, status=EXCLUDED.status, updated_at=NOW()`,
		a.ID, a.DoctorID, a.PatientID, a.AppointmentTime, a.Status,
	)
	// the unique index closes the validate-then-write race on a slot
	if isUniqueViolation(err, "uq_appointments_doctor_time") {
		return clinic.ErrSlotTaken
	}
	return err
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (s *Store) AppointmentsByDoctorBetween(ctx context.Context, doctorID string, start, end time.Time) ([]model.Appointment, error) {
	return s.queryAppointments(ctx,
		apptSelect+` WHERE a.doctor_id = $1 AND a.appointment_time BETWEEN $2 AND $3 ORDER BY a.created_at`,
		doctorID, start, end)
}

func (s *Store) AppointmentsByPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return s.queryAppointments(ctx,
		apptSelect+` WHERE a.patient_id = $1 ORDER BY a.created_at`, patientID)
}

func (s *Store) queryAppointments(ctx context.Context, q string, args ...any) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.PatientID, &a.AppointmentTime, &a.Status,
			&a.DoctorName, &a.PatientName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
