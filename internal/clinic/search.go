package clinic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"clinic-scheduling-api/internal/model"
)

// SearchDoctors composes the supported filter combinations. Precedence:
// name+specialty, name, specialty, period-only (all doctors as base). With
// no criteria at all the result is empty; listing every doctor is a separate
// operation. A period bucket, when present, is applied to the base set last.
func (s *Service) SearchDoctors(ctx context.Context, fc model.FilterCriteria) ([]model.Doctor, error) {
	var (
		base []model.Doctor
		err  error
	)
	switch {
	case fc.Name != "" && fc.Specialty != "":
		base, err = s.doctors.DoctorsByNameAndSpecialty(ctx, fc.Name, fc.Specialty)
	case fc.Name != "":
		base, err = s.doctors.DoctorsByName(ctx, fc.Name)
	case fc.Specialty != "":
		base, err = s.doctors.DoctorsBySpecialty(ctx, fc.Specialty)
	case fc.Period != "":
		base, err = s.doctors.AllDoctors(ctx)
	default:
		return []model.Doctor{}, nil
	}
	if err != nil {
		return nil, s.internal("doctor search", err)
	}

	if fc.Period == "" {
		return base, nil
	}
	return filterByPeriod(base, fc.Period)
}

// ListDoctors is the "list all" operation, distinct from an empty search.
func (s *Service) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	docs, err := s.doctors.AllDoctors(ctx)
	if err != nil {
		return nil, s.internal("doctor list", err)
	}
	return docs, nil
}

// filterByPeriod keeps doctors with at least one published slot in the
// bucket. Any-match: a doctor with both morning and afternoon slots matches
// AM and PM alike. The whole template is inspected, booked or not.
func filterByPeriod(docs []model.Doctor, period string) ([]model.Doctor, error) {
	out := make([]model.Doctor, 0, len(docs))
	for i := range docs {
		ok, err := matchesPeriod(docs[i].AvailableSlots, period)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, docs[i])
		}
	}
	return out, nil
}

func matchesPeriod(slots []string, period string) (bool, error) {
	for _, slot := range slots {
		h, err := slotHour(slot)
		if err != nil {
			return false, err
		}
		if (period == model.PeriodAM && h < 12) || (period == model.PeriodPM && h >= 12) {
			return true, nil
		}
	}
	return false, nil
}

// slotHour parses the integer prefix before the first ':' of an HH:MM label.
func slotHour(label string) (int, error) {
	head, _, ok := strings.Cut(label, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSlot, label)
	}
	h, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSlot, label)
	}
	return h, nil
}
