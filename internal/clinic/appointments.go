package clinic

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-scheduling-api/internal/model"
)

// ValidateBooking checks that the appointment's doctor exists and still has
// at least one free slot on the appointment's date. It does NOT check that
// the requested time itself is a free published slot; a booking at an
// off-template time succeeds as long as the day is not fully booked. The
// (doctor, timestamp) uniqueness constraint at the store is the only guard
// against colliding bookings.
func (s *Service) ValidateBooking(ctx context.Context, a *model.Appointment) error {
	free, err := s.Availability(ctx, a.DoctorID, a.AppointmentTime)
	if err != nil {
		return err
	}
	if len(free) == 0 {
		return ErrNoAvailability
	}
	return nil
}

// Book validates and persists a new Scheduled appointment. The caller's
// patient role is enforced by the transport layer before this runs.
func (s *Service) Book(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	if err := s.ValidateBooking(ctx, a); err != nil {
		return nil, err
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.Status = model.StatusScheduled

	if err := s.appointments.SaveAppointment(ctx, a); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, s.internal("save appointment", err)
	}
	return a, nil
}

// Update replaces an existing appointment wholesale after re-validation.
// Nothing is written when validation fails.
func (s *Service) Update(ctx context.Context, a *model.Appointment) error {
	existing, err := s.appointments.AppointmentByID(ctx, a.ID)
	if err != nil {
		return s.internal("appointment lookup", err)
	}
	if existing == nil {
		return ErrUnknownAppointment
	}

	if err := s.ValidateBooking(ctx, a); err != nil {
		return err
	}

	if err := s.appointments.SaveAppointment(ctx, a); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return s.internal("save appointment", err)
	}
	return nil
}

// Cancel deletes the appointment. The caller must be the patient who owns
// it: callerEmail is the token subject and is matched against the stored
// appointment's patient.
func (s *Service) Cancel(ctx context.Context, id, callerEmail string) error {
	a, err := s.appointments.AppointmentByID(ctx, id)
	if err != nil {
		return s.internal("appointment lookup", err)
	}
	if a == nil {
		return ErrUnknownAppointment
	}

	caller, err := s.patients.PatientByEmail(ctx, callerEmail)
	if err != nil {
		return s.internal("patient lookup", err)
	}
	if caller == nil || caller.ID != a.PatientID {
		return ErrNotAppointmentOwner
	}

	if err := s.appointments.DeleteAppointment(ctx, id); err != nil {
		return s.internal("delete appointment", err)
	}
	return nil
}

// ChangeStatus is fire-and-forget: a missing id is a silent no-op so the
// prescription workflow never fails on a stale reference.
func (s *Service) ChangeStatus(ctx context.Context, id string, status int) error {
	if status != model.StatusScheduled && status != model.StatusCompleted {
		return ErrBadStatus
	}

	a, err := s.appointments.AppointmentByID(ctx, id)
	if err != nil {
		return s.internal("appointment lookup", err)
	}
	if a == nil {
		s.log.Debug().Str("appointment_id", id).Msg("status change for unknown appointment, skipped")
		return nil
	}

	a.Status = status
	if err := s.appointments.SaveAppointment(ctx, a); err != nil {
		return s.internal("save appointment", err)
	}
	return nil
}

// ListForDoctor returns the doctor's appointments in the date's full-day
// window, optionally restricted to patients whose name contains patientName
// case-insensitively. Store natural order.
func (s *Service) ListForDoctor(ctx context.Context, doctorID string, date time.Time, patientName string) ([]model.Appointment, error) {
	doc, err := s.doctors.DoctorByID(ctx, doctorID)
	if err != nil {
		return nil, s.internal("doctor lookup", err)
	}
	if doc == nil {
		return nil, ErrUnknownDoctor
	}

	start, end := dayWindow(date)
	appts, err := s.appointments.AppointmentsByDoctorBetween(ctx, doctorID, start, end)
	if err != nil {
		return nil, s.internal("appointment range lookup", err)
	}
	if patientName == "" {
		return appts, nil
	}
	return filterBySubstring(appts, patientName, func(a *model.Appointment) string { return a.PatientName }), nil
}

// ListForPatient returns the calling patient's appointment history. The
// optional condition narrows by lifecycle state (past selects completed
// appointments, future selects scheduled ones); the optional doctorName is a
// case-insensitive substring match. Both filters may combine.
func (s *Service) ListForPatient(ctx context.Context, patientEmail, condition, doctorName string) ([]model.Appointment, error) {
	status := -1
	switch condition {
	case "":
	case model.ConditionPast:
		status = model.StatusCompleted
	case model.ConditionFuture:
		status = model.StatusScheduled
	default:
		return nil, ErrBadCondition
	}

	pat, err := s.patients.PatientByEmail(ctx, patientEmail)
	if err != nil {
		return nil, s.internal("patient lookup", err)
	}
	if pat == nil {
		return nil, ErrUnknownPatient
	}

	appts, err := s.appointments.AppointmentsByPatient(ctx, pat.ID)
	if err != nil {
		return nil, s.internal("appointment lookup", err)
	}
	if status >= 0 {
		appts = filterByStatus(appts, status)
	}
	if doctorName == "" {
		return appts, nil
	}
	return filterBySubstring(appts, doctorName, func(a *model.Appointment) string { return a.DoctorName }), nil
}

// filterByStatus builds a new slice; the input is never mutated.
func filterByStatus(appts []model.Appointment, status int) []model.Appointment {
	out := make([]model.Appointment, 0, len(appts))
	for i := range appts {
		if appts[i].Status == status {
			out = append(out, appts[i])
		}
	}
	return out
}

// filterBySubstring builds a new slice; the input is never mutated.
func filterBySubstring(appts []model.Appointment, needle string, field func(*model.Appointment) string) []model.Appointment {
	needle = strings.ToLower(needle)
	out := make([]model.Appointment, 0, len(appts))
	for i := range appts {
		if strings.Contains(strings.ToLower(field(&appts[i])), needle) {
			out = append(out, appts[i])
		}
	}
	return out
}
