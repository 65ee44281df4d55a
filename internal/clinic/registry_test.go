package clinic

import (
	"context"
	"errors"
	"testing"

	"clinic-scheduling-api/internal/model"
)

func TestAddDoctor_DuplicateEmail(t *testing.T) {
	dir := newMockDoctorDir(testDoctor())
	svc := newTestService(dir, newMockPatientDir(), newMockApptStore())

	err := svc.AddDoctor(context.Background(), &model.Doctor{Name: "Impostor", Email: "grace@clinic.test"})
	if !errors.Is(err, ErrDuplicateDoctorEmail) {
		t.Errorf("err = %v, want ErrDuplicateDoctorEmail", err)
	}
}

func TestAddDoctor_AssignsID(t *testing.T) {
	dir := newMockDoctorDir()
	svc := newTestService(dir, newMockPatientDir(), newMockApptStore())

	d := &model.Doctor{Name: "Grace Obi", Email: "grace@clinic.test", Specialty: "Cardiology"}
	if err := svc.AddDoctor(context.Background(), d); err != nil {
		t.Fatalf("add: %v", err)
	}
	if d.ID == "" {
		t.Error("no id assigned")
	}
	if stored, _ := dir.DoctorByID(context.Background(), d.ID); stored == nil {
		t.Error("doctor not persisted")
	}
}

func TestUpdateDoctor_NotFound(t *testing.T) {
	svc := newTestService(newMockDoctorDir(), newMockPatientDir(), newMockApptStore())

	err := svc.UpdateDoctor(context.Background(), &model.Doctor{ID: "ghost", Email: "ghost@clinic.test"})
	if !errors.Is(err, ErrUnknownDoctor) {
		t.Errorf("err = %v, want ErrUnknownDoctor", err)
	}
}

func TestDeleteDoctor_CascadesAppointments(t *testing.T) {
	dir := newMockDoctorDir(testDoctor())
	appts := newMockApptStore(
		&model.Appointment{ID: "a-1", DoctorID: "doc-1", AppointmentTime: at(2024, 6, 1, 9, 0)},
		&model.Appointment{ID: "a-2", DoctorID: "doc-2", AppointmentTime: at(2024, 6, 1, 9, 0)},
	)
	dir.appts = appts
	svc := newTestService(dir, newMockPatientDir(), appts)

	if err := svc.DeleteDoctor(context.Background(), "doc-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if d, _ := dir.DoctorByID(context.Background(), "doc-1"); d != nil {
		t.Error("doctor still present")
	}
	if a, _ := appts.AppointmentByID(context.Background(), "a-1"); a != nil {
		t.Error("doctor's appointment survived the delete")
	}
	if a, _ := appts.AppointmentByID(context.Background(), "a-2"); a == nil {
		t.Error("unrelated appointment was deleted")
	}
}

func TestRegisterPatient_DuplicatePhone(t *testing.T) {
	pats := newMockPatientDir(testPatient())
	svc := newTestService(newMockDoctorDir(), pats, newMockApptStore())

	err := svc.RegisterPatient(context.Background(), &model.Patient{
		Name: "Someone Else", Email: "else@clinic.test", Phone: "0700000001",
	})
	if !errors.Is(err, ErrDuplicatePatient) {
		t.Errorf("err = %v, want ErrDuplicatePatient", err)
	}
}

func TestRegisterPatient_New(t *testing.T) {
	pats := newMockPatientDir()
	svc := newTestService(newMockDoctorDir(), pats, newMockApptStore())

	p := &model.Patient{Name: "Jane Doe", Email: "jane@clinic.test", Phone: "0700000001"}
	if err := svc.RegisterPatient(context.Background(), p); err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.ID == "" {
		t.Error("no id assigned")
	}
}
