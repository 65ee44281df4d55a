package clinic

import (
	"context"
	"errors"
	"testing"

	"clinic-scheduling-api/internal/model"
)

func searchFixture() *mockDoctorDir {
	return newMockDoctorDir(
		&model.Doctor{ID: "doc-1", Name: "Grace Obi", Specialty: "Cardiology", AvailableSlots: []string{"09:00", "14:00"}},
		&model.Doctor{ID: "doc-2", Name: "Femi Ade", Specialty: "Dermatology", AvailableSlots: []string{"08:00", "10:00"}},
		&model.Doctor{ID: "doc-3", Name: "Ada Obi", Specialty: "Cardiology", AvailableSlots: []string{"15:00", "16:00"}},
	)
}

func ids(docs []model.Doctor) map[string]bool {
	out := make(map[string]bool, len(docs))
	for _, d := range docs {
		out[d.ID] = true
	}
	return out
}

func TestSearchDoctors_NoCriteriaIsEmpty(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	docs, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("docs = %v, want empty (list-all is a separate operation)", docs)
	}
}

func TestSearchDoctors_SpecialtyCaseInsensitive(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	docs, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Specialty: "cardiology"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	got := ids(docs)
	if len(got) != 2 || !got["doc-1"] || !got["doc-3"] {
		t.Errorf("got %v, want doc-1 and doc-3", got)
	}
}

func TestSearchDoctors_NameSubstring(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	docs, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Name: "obi"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	got := ids(docs)
	if len(got) != 2 || !got["doc-1"] || !got["doc-3"] {
		t.Errorf("got %v, want doc-1 and doc-3", got)
	}
}

func TestSearchDoctors_NameAndSpecialty(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	docs, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Name: "grace", Specialty: "Cardiology"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "doc-1" {
		t.Errorf("docs = %v, want just doc-1", docs)
	}
}

// A doctor with morning and afternoon slots matches both buckets.
func TestSearchDoctors_PeriodAnyMatch(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	am, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Name: "grace", Period: model.PeriodAM})
	if err != nil {
		t.Fatalf("am search: %v", err)
	}
	pm, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Name: "grace", Period: model.PeriodPM})
	if err != nil {
		t.Fatalf("pm search: %v", err)
	}
	if len(am) != 1 || len(pm) != 1 {
		t.Errorf("am = %v, pm = %v, doctor with 09:00 and 14:00 must match both", am, pm)
	}
}

func TestSearchDoctors_PeriodOnly(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	docs, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Period: model.PeriodPM})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	got := ids(docs)
	if len(got) != 2 || !got["doc-1"] || !got["doc-3"] {
		t.Errorf("got %v, want the two doctors with afternoon slots", got)
	}
}

func TestSearchDoctors_MalformedSlot(t *testing.T) {
	dir := newMockDoctorDir(&model.Doctor{ID: "doc-x", Name: "Broken", AvailableSlots: []string{"morning"}})
	svc := newTestService(dir, newMockPatientDir(), newMockApptStore())

	_, err := svc.SearchDoctors(context.Background(), model.FilterCriteria{Period: model.PeriodAM})
	if !errors.Is(err, ErrMalformedSlot) {
		t.Errorf("err = %v, want ErrMalformedSlot", err)
	}
}

func TestListDoctors_ReturnsAll(t *testing.T) {
	svc := newTestService(searchFixture(), newMockPatientDir(), newMockApptStore())

	docs, err := svc.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("len = %d, want 3", len(docs))
	}
}
