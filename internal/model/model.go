package model

import "time"

// Appointment status values. Cancellation deletes the row instead of
// introducing a third status.
const (
	StatusScheduled = 0
	StatusCompleted = 1
)

// Roles carried in tokens. Checked exactly, no hierarchy.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Period buckets for doctor search.
const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

// Condition buckets for patient appointment history: past maps to completed
// appointments, future to scheduled ones.
const (
	ConditionPast   = "past"
	ConditionFuture = "future"
)

type Doctor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Specialty    string `json:"specialty"`
	// Daily slot template, "HH:MM" labels, unique within the doctor.
	AvailableSlots []string  `json:"availableSlots"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Patient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Appointment struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctorId"`
	PatientID       string    `json:"patientId"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Status          int       `json:"status"`
	// Joined on read, never written through this struct.
	DoctorName  string    `json:"doctorName,omitempty"`
	PatientName string    `json:"patientName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EndTime is always one hour after the start.
func (a *Appointment) EndTime() time.Time {
	return a.AppointmentTime.Add(time.Hour)
}

// Date is the calendar-day part of the appointment timestamp.
func (a *Appointment) Date() time.Time {
	y, m, d := a.AppointmentTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.AppointmentTime.Location())
}

// TimeLabel reduces the timestamp to its minute-precision slot label.
func (a *Appointment) TimeLabel() string {
	return a.AppointmentTime.Format("15:04")
}

type Prescription struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	PatientName   string    `json:"patientName"`
	Medication    string    `json:"medication"`
	Dosage        string    `json:"dosage"`
	DoctorNotes   string    `json:"doctorNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FilterCriteria drives doctor search. Zero values mean "absent".
type FilterCriteria struct {
	Name      string
	Specialty string
	Period    string // PeriodAM or PeriodPM
}
