package clinic

import (
	"context"
	"time"
)

// Availability returns the doctor's published slot labels with any label
// already consumed by an appointment on that date removed, template order
// preserved. An empty result means fully booked, not an error.
func (s *Service) Availability(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	doc, err := s.doctors.DoctorByID(ctx, doctorID)
	if err != nil {
		return nil, s.internal("doctor lookup", err)
	}
	if doc == nil {
		return nil, ErrUnknownDoctor
	}

	start, end := dayWindow(date)
	booked, err := s.appointments.AppointmentsByDoctorBetween(ctx, doctorID, start, end)
	if err != nil {
		return nil, s.internal("appointment range lookup", err)
	}

	taken := make(map[string]bool, len(booked))
	for i := range booked {
		taken[booked[i].TimeLabel()] = true
	}

	free := make([]string, 0, len(doc.AvailableSlots))
	for _, slot := range doc.AvailableSlots {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}
