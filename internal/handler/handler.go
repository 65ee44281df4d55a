package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/clinic"
	"clinic-scheduling-api/internal/middleware"
	"clinic-scheduling-api/internal/model"
	"clinic-scheduling-api/internal/store"
)

const refreshTTL = 30 * 24 * time.Hour

// Accounts is the credential lookup surface the handlers use next to the
// scheduling service.
type Accounts interface {
	DoctorByID(ctx context.Context, id string) (*model.Doctor, error)
	DoctorByEmail(ctx context.Context, email string) (*model.Doctor, error)
	PatientByEmail(ctx context.Context, email string) (*model.Patient, error)
	AdminByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type Prescriptions interface {
	SavePrescription(ctx context.Context, p *model.Prescription) error
	PrescriptionByAppointment(ctx context.Context, appointmentID string) (*model.Prescription, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, subject, role, tokenHash string, expiresAt time.Time) (string, error)
	RefreshTokenByHash(ctx context.Context, tokenHash string) (*store.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, oldID, newID, subject, role, newHash string, newExpiry time.Time) error
	RevokeAllRefreshTokens(ctx context.Context, subject string) error
}

type Handler struct {
	svc      *clinic.Service
	accounts Accounts
	scripts  Prescriptions
	refresh  RefreshTokens
	secret   string
}

func New(svc *clinic.Service, accounts Accounts, scripts Prescriptions, refresh RefreshTokens, secret string) *Handler {
	return &Handler{svc: svc, accounts: accounts, scripts: scripts, refresh: refresh, secret: secret}
}

// Register wires every route under the api group. Credential endpoints are
// rate limited; everything else sits behind the token gate with exact-match
// role checks.
func (h *Handler) Register(api *echo.Group, rl *middleware.RateLimiter) {
	creds := api.Group("/auth", middleware.RateLimit(rl))
	creds.POST("/admin/login", h.adminLogin)
	creds.POST("/doctor/login", h.doctorLogin)
	creds.POST("/patient/login", h.patientLogin)
	creds.POST("/patient/register", h.registerPatient)
	api.POST("/auth/refresh", h.refreshToken)

	authed := api.Group("", middleware.Auth(h.secret))

	docs := authed.Group("/doctors",
		middleware.RequireAnyRole(model.RoleDoctor, model.RolePatient, model.RoleAdmin))
	docs.GET("", h.listDoctors)
	docs.GET("/search", h.searchDoctors)
	docs.GET("/:id/availability", h.availability)

	admin := authed.Group("/doctors", middleware.RequireRole(model.RoleAdmin))
	admin.POST("", h.createDoctor)
	admin.PUT("/:id", h.updateDoctor)
	admin.DELETE("/:id", h.deleteDoctor)

	booking := authed.Group("/appointments", middleware.RequireRole(model.RolePatient))
	booking.POST("", h.bookAppointment)
	booking.PUT("/:id", h.updateAppointment)
	booking.DELETE("/:id", h.cancelAppointment)

	schedule := authed.Group("/appointments", middleware.RequireRole(model.RoleDoctor))
	schedule.GET("", h.doctorAppointments)

	authed.GET("/patient/appointments", h.patientHistory, middleware.RequireRole(model.RolePatient))
	authed.GET("/patient/me", h.patientMe, middleware.RequireRole(model.RolePatient))

	rx := authed.Group("/prescriptions", middleware.RequireRole(model.RoleDoctor))
	rx.POST("", h.createPrescription)
	rx.GET("/:appointmentId", h.prescriptionByAppointment)
}

// httpError maps domain errors to status codes without leaking store
// diagnostics.
func httpError(err error) error {
	switch {
	case errors.Is(err, clinic.ErrUnknownDoctor),
		errors.Is(err, clinic.ErrUnknownPatient),
		errors.Is(err, clinic.ErrUnknownAppointment):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, clinic.ErrNoAvailability),
		errors.Is(err, clinic.ErrBadStatus),
		errors.Is(err, clinic.ErrBadCondition),
		errors.Is(err, clinic.ErrMalformedSlot):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, clinic.ErrSlotTaken),
		errors.Is(err, clinic.ErrDuplicateDoctorEmail),
		errors.Is(err, clinic.ErrDuplicatePatient):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, clinic.ErrNotAppointmentOwner):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// dateParam parses ?date=YYYY-MM-DD, defaulting to today.
func dateParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return d, nil
}
