package clinic

import "errors"

// Domain errors. Handlers map these to status codes; anything else that
// escapes the service is an internal failure.
var (
	ErrUnknownDoctor      = errors.New("doctor not found")
	ErrUnknownPatient     = errors.New("patient not found")
	ErrUnknownAppointment = errors.New("appointment not found")

	ErrNoAvailability = errors.New("doctor has no free slots that day")
	ErrMalformedSlot  = errors.New("malformed slot label")
	ErrBadStatus      = errors.New("unknown appointment status")
	ErrBadCondition   = errors.New("unknown history condition")

	ErrSlotTaken            = errors.New("slot already booked")
	ErrDuplicateDoctorEmail = errors.New("doctor email already registered")
	ErrDuplicatePatient     = errors.New("patient email or phone already registered")

	ErrNotAppointmentOwner = errors.New("appointment belongs to another patient")

	// store failures are logged at the service boundary and reported as this
	ErrInternal = errors.New("internal error")
)
