package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/middleware"
	"clinic-scheduling-api/internal/model"
)

type appointmentRequest struct {
	DoctorID        string    `json:"doctorId"`
	AppointmentTime time.Time `json:"appointmentTime"`
}

// callerPatient resolves the authenticated patient from the token subject.
func (h *Handler) callerPatient(c echo.Context) (*model.Patient, error) {
	pat, err := h.accounts.PatientByEmail(c.Request().Context(), middleware.Subject(c))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if pat == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unknown patient account")
	}
	return pat, nil
}

func (h *Handler) bookAppointment(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.DoctorID == "" || req.AppointmentTime.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId and appointmentTime required")
	}

	pat, err := h.callerPatient(c)
	if err != nil {
		return err
	}

	appt, err := h.svc.Book(c.Request().Context(), &model.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       pat.ID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) updateAppointment(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.DoctorID == "" || req.AppointmentTime.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId and appointmentTime required")
	}

	pat, err := h.callerPatient(c)
	if err != nil {
		return err
	}

	appt := &model.Appointment{
		ID:              c.Param("id"),
		DoctorID:        req.DoctorID,
		PatientID:       pat.ID,
		AppointmentTime: req.AppointmentTime,
	}
	if err := h.svc.Update(c.Request().Context(), appt); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) cancelAppointment(c echo.Context) error {
	if err := h.svc.Cancel(c.Request().Context(), c.Param("id"), middleware.Subject(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// doctorAppointments lists the calling doctor's schedule for a day,
// optionally narrowed by a patient-name substring.
func (h *Handler) doctorAppointments(c echo.Context) error {
	doc, err := h.accounts.DoctorByEmail(c.Request().Context(), middleware.Subject(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if doc == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown doctor account")
	}

	date, err := dateParam(c)
	if err != nil {
		return err
	}

	appts, err := h.svc.ListForDoctor(c.Request().Context(), doc.ID, date, c.QueryParam("patient"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, appts)
}

// patientHistory lists the calling patient's appointments, optionally
// narrowed by a condition bucket (past/future) and a doctor-name substring.
func (h *Handler) patientHistory(c echo.Context) error {
	condition := strings.ToLower(c.QueryParam("condition"))
	appts, err := h.svc.ListForPatient(c.Request().Context(), middleware.Subject(c), condition, c.QueryParam("doctor"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, appts)
}

// patientMe returns the calling patient's own record.
func (h *Handler) patientMe(c echo.Context) error {
	pat, err := h.callerPatient(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pat)
}
