package clinic

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"clinic-scheduling-api/internal/model"
)

func newTestService(docs *mockDoctorDir, pats *mockPatientDir, appts *mockApptStore) *Service {
	return New(docs, pats, appts, zerolog.Nop())
}

// Map-backed fakes for the collaborator contracts.

type mockDoctorDir struct {
	doctors map[string]*model.Doctor
	// when set, DeleteDoctor cascades like the pg store does
	appts *mockApptStore
}

var _ DoctorDirectory = (*mockDoctorDir)(nil)

func newMockDoctorDir(docs ...*model.Doctor) *mockDoctorDir {
	m := &mockDoctorDir{doctors: make(map[string]*model.Doctor)}
	for _, d := range docs {
		m.doctors[d.ID] = d
	}
	return m
}

func (m *mockDoctorDir) DoctorByID(_ context.Context, id string) (*model.Doctor, error) {
	return m.doctors[id], nil
}

func (m *mockDoctorDir) DoctorByEmail(_ context.Context, email string) (*model.Doctor, error) {
	for _, d := range m.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (m *mockDoctorDir) AllDoctors(_ context.Context) ([]model.Doctor, error) {
	out := make([]model.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDoctorDir) DoctorsByName(_ context.Context, name string) ([]model.Doctor, error) {
	var out []model.Doctor
	for _, d := range m.doctors {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(name)) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockDoctorDir) DoctorsBySpecialty(_ context.Context, specialty string) ([]model.Doctor, error) {
	var out []model.Doctor
	for _, d := range m.doctors {
		if strings.EqualFold(d.Specialty, specialty) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockDoctorDir) DoctorsByNameAndSpecialty(ctx context.Context, name, specialty string) ([]model.Doctor, error) {
	byName, _ := m.DoctorsByName(ctx, name)
	var out []model.Doctor
	for _, d := range byName {
		if strings.EqualFold(d.Specialty, specialty) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDoctorDir) SaveDoctor(_ context.Context, d *model.Doctor) error {
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockDoctorDir) DeleteDoctor(_ context.Context, id string) error {
	if m.appts != nil {
		for aid, a := range m.appts.appts {
			if a.DoctorID == id {
				delete(m.appts.appts, aid)
			}
		}
	}
	delete(m.doctors, id)
	return nil
}

type mockPatientDir struct {
	patients map[string]*model.Patient
}

var _ PatientDirectory = (*mockPatientDir)(nil)

func newMockPatientDir(pats ...*model.Patient) *mockPatientDir {
	m := &mockPatientDir{patients: make(map[string]*model.Patient)}
	for _, p := range pats {
		m.patients[p.ID] = p
	}
	return m
}

func (m *mockPatientDir) PatientByEmail(_ context.Context, email string) (*model.Patient, error) {
	for _, p := range m.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPatientDir) PatientByEmailOrPhone(_ context.Context, email, phone string) (*model.Patient, error) {
	for _, p := range m.patients {
		if p.Email == email || p.Phone == phone {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPatientDir) SavePatient(_ context.Context, p *model.Patient) error {
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

type mockApptStore struct {
	appts map[string]*model.Appointment
	order []string // preserves insertion order for range queries
}

var _ AppointmentStore = (*mockApptStore)(nil)

func newMockApptStore(appts ...*model.Appointment) *mockApptStore {
	m := &mockApptStore{appts: make(map[string]*model.Appointment)}
	for _, a := range appts {
		m.appts[a.ID] = a
		m.order = append(m.order, a.ID)
	}
	return m
}

func (m *mockApptStore) AppointmentByID(_ context.Context, id string) (*model.Appointment, error) {
	return m.appts[id], nil
}

func (m *mockApptStore) SaveAppointment(_ context.Context, a *model.Appointment) error {
	if _, ok := m.appts[a.ID]; !ok {
		for _, other := range m.appts {
			if other.DoctorID == a.DoctorID && other.AppointmentTime.Equal(a.AppointmentTime) {
				return ErrSlotTaken
			}
		}
		m.order = append(m.order, a.ID)
	}
	cp := *a
	m.appts[a.ID] = &cp
	return nil
}

func (m *mockApptStore) DeleteAppointment(_ context.Context, id string) error {
	delete(m.appts, id)
	return nil
}

func (m *mockApptStore) AppointmentsByDoctorBetween(_ context.Context, doctorID string, start, end time.Time) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, id := range m.order {
		a, ok := m.appts[id]
		if !ok || a.DoctorID != doctorID {
			continue
		}
		if a.AppointmentTime.Before(start) || a.AppointmentTime.After(end) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockApptStore) AppointmentsByPatient(_ context.Context, patientID string) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, id := range m.order {
		if a, ok := m.appts[id]; ok && a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

