package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/auth"
	"clinic-scheduling-api/internal/model"
)

type doctorRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Specialty      string   `json:"specialty"`
	AvailableSlots []string `json:"availableSlots"`
}

func (h *Handler) listDoctors(c echo.Context) error {
	docs, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) searchDoctors(c echo.Context) error {
	fc := model.FilterCriteria{
		Name:      c.QueryParam("name"),
		Specialty: c.QueryParam("specialty"),
		Period:    strings.ToUpper(c.QueryParam("period")),
	}
	if fc.Period != "" && fc.Period != model.PeriodAM && fc.Period != model.PeriodPM {
		return echo.NewHTTPError(http.StatusBadRequest, "period must be AM or PM")
	}

	docs, err := h.svc.SearchDoctors(c.Request().Context(), fc)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) availability(c echo.Context) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}

	free, err := h.svc.Availability(c.Request().Context(), c.Param("id"), date)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"availableSlots": free})
}

func (h *Handler) createDoctor(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and a password of 8+ chars are required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	doc := &model.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		Specialty:      req.Specialty,
		AvailableSlots: req.AvailableSlots,
	}
	if err := h.svc.AddDoctor(c.Request().Context(), doc); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, doc)
}

func (h *Handler) updateDoctor(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	existing, err := h.accounts.DoctorByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if existing == nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}

	// password unchanged unless a new one is supplied
	hash := existing.PasswordHash
	if req.Password != "" {
		if hash, err = auth.HashPassword(req.Password); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	doc := &model.Doctor{
		ID:             existing.ID,
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		Specialty:      req.Specialty,
		AvailableSlots: req.AvailableSlots,
	}
	if err := h.svc.UpdateDoctor(c.Request().Context(), doc); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) deleteDoctor(c echo.Context) error {
	if err := h.svc.DeleteDoctor(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
