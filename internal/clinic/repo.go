package clinic

import (
	"context"
	"time"

	"clinic-scheduling-api/internal/model"
)

// Collaborator contracts. Single-record lookups return (nil, nil) when the
// record is absent; a non-nil error always means a store failure.

type DoctorDirectory interface {
	DoctorByID(ctx context.Context, id string) (*model.Doctor, error)
	DoctorByEmail(ctx context.Context, email string) (*model.Doctor, error)
	AllDoctors(ctx context.Context) ([]model.Doctor, error)
	// case-insensitive substring match on the doctor name
	DoctorsByName(ctx context.Context, name string) ([]model.Doctor, error)
	// exact, case-insensitive specialty match
	DoctorsBySpecialty(ctx context.Context, specialty string) ([]model.Doctor, error)
	DoctorsByNameAndSpecialty(ctx context.Context, name, specialty string) ([]model.Doctor, error)
	SaveDoctor(ctx context.Context, d *model.Doctor) error
	// removes the doctor and all their appointments in one transaction
	DeleteDoctor(ctx context.Context, id string) error
}

type PatientDirectory interface {
	PatientByEmail(ctx context.Context, email string) (*model.Patient, error)
	PatientByEmailOrPhone(ctx context.Context, email, phone string) (*model.Patient, error)
	SavePatient(ctx context.Context, p *model.Patient) error
}

type AppointmentStore interface {
	AppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	// insert or full replace by id; a booking that collides with an existing
	// (doctor, timestamp) pair fails with ErrSlotTaken
	SaveAppointment(ctx context.Context, a *model.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
	AppointmentsByDoctorBetween(ctx context.Context, doctorID string, start, end time.Time) ([]model.Appointment, error)
	AppointmentsByPatient(ctx context.Context, patientID string) ([]model.Appointment, error)
}
