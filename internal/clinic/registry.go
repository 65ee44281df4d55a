package clinic

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"clinic-scheduling-api/internal/model"
)

// Doctor and patient registry operations. Doctor mutation is admin-gated at
// the transport layer.

func (s *Service) AddDoctor(ctx context.Context, d *model.Doctor) error {
	existing, err := s.doctors.DoctorByEmail(ctx, d.Email)
	if err != nil {
		return s.internal("doctor lookup", err)
	}
	if existing != nil {
		return ErrDuplicateDoctorEmail
	}

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if err := s.doctors.SaveDoctor(ctx, d); err != nil {
		// unique index backstops a concurrent registration
		if errors.Is(err, ErrDuplicateDoctorEmail) {
			return ErrDuplicateDoctorEmail
		}
		return s.internal("save doctor", err)
	}
	return nil
}

func (s *Service) UpdateDoctor(ctx context.Context, d *model.Doctor) error {
	existing, err := s.doctors.DoctorByID(ctx, d.ID)
	if err != nil {
		return s.internal("doctor lookup", err)
	}
	if existing == nil {
		return ErrUnknownDoctor
	}

	if err := s.doctors.SaveDoctor(ctx, d); err != nil {
		if errors.Is(err, ErrDuplicateDoctorEmail) {
			return ErrDuplicateDoctorEmail
		}
		return s.internal("save doctor", err)
	}
	return nil
}

// DeleteDoctor removes the doctor together with their appointments; the
// directory performs both deletes atomically.
func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	existing, err := s.doctors.DoctorByID(ctx, id)
	if err != nil {
		return s.internal("doctor lookup", err)
	}
	if existing == nil {
		return ErrUnknownDoctor
	}

	if err := s.doctors.DeleteDoctor(ctx, id); err != nil {
		return s.internal("delete doctor", err)
	}
	return nil
}

// RegisterPatient enforces uniqueness across both email and phone.
func (s *Service) RegisterPatient(ctx context.Context, p *model.Patient) error {
	existing, err := s.patients.PatientByEmailOrPhone(ctx, p.Email, p.Phone)
	if err != nil {
		return s.internal("patient lookup", err)
	}
	if existing != nil {
		return ErrDuplicatePatient
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := s.patients.SavePatient(ctx, p); err != nil {
		if errors.Is(err, ErrDuplicatePatient) {
			return ErrDuplicatePatient
		}
		return s.internal("save patient", err)
	}
	return nil
}
