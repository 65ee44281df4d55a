package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/model"
)

type prescriptionRequest struct {
	AppointmentID string `json:"appointmentId"`
	PatientName   string `json:"patientName"`
	Medication    string `json:"medication"`
	Dosage        string `json:"dosage"`
	DoctorNotes   string `json:"doctorNotes"`
}

// createPrescription marks the appointment completed, then stores the
// prescription. The status change is fire-and-forget: a stale appointment id
// does not block the prescription.
func (h *Handler) createPrescription(c echo.Context) error {
	var req prescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.AppointmentID == "" || req.Medication == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "appointmentId and medication required")
	}
	ctx := c.Request().Context()

	if err := h.svc.ChangeStatus(ctx, req.AppointmentID, model.StatusCompleted); err != nil {
		return httpError(err)
	}

	p := &model.Prescription{
		ID:            uuid.New().String(),
		AppointmentID: req.AppointmentID,
		PatientName:   req.PatientName,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		DoctorNotes:   req.DoctorNotes,
	}
	if err := h.scripts.SavePrescription(ctx, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) prescriptionByAppointment(c echo.Context) error {
	p, err := h.scripts.PrescriptionByAppointment(c.Request().Context(), c.Param("appointmentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	return c.JSON(http.StatusOK, p)
}
