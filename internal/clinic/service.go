package clinic

import (
	"time"

	"github.com/rs/zerolog"
)

// Service owns the availability, booking and search logic. All collaborators
// are injected once at construction; there is no package-level state.
type Service struct {
	doctors      DoctorDirectory
	patients     PatientDirectory
	appointments AppointmentStore
	log          zerolog.Logger
}

func New(doctors DoctorDirectory, patients PatientDirectory, appointments AppointmentStore, log zerolog.Logger) *Service {
	return &Service{
		doctors:      doctors,
		patients:     patients,
		appointments: appointments,
		log:          log,
	}
}

// internal logs a store failure and hides the diagnostics from the caller.
func (s *Service) internal(op string, err error) error {
	s.log.Error().Err(err).Str("op", op).Msg("store failure")
	return ErrInternal
}

// dayWindow is the inclusive [00:00:00, 23:59:59] window of date's calendar day.
func dayWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return start, start.Add(24*time.Hour - time.Second)
}
