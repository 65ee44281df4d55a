package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/auth"
	"clinic-scheduling-api/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerPatientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) issueTokens(c echo.Context, subject, role string) error {
	access, err := auth.MakeToken(subject, role, h.secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if _, err := h.refresh.CreateRefreshToken(c.Request().Context(), subject, role, hash, time.Now().Add(refreshTTL)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: access, RefreshToken: raw})
}

func (h *Handler) doctorLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	doc, err := h.accounts.DoctorByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if doc == nil || !auth.CheckPassword(doc.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	return h.issueTokens(c, doc.Email, model.RoleDoctor)
}

func (h *Handler) patientLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	pat, err := h.accounts.PatientByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if pat == nil || !auth.CheckPassword(pat.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	return h.issueTokens(c, pat.Email, model.RolePatient)
}

func (h *Handler) adminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	adm, err := h.accounts.AdminByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if adm == nil || !auth.CheckPassword(adm.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	return h.issueTokens(c, adm.Username, model.RoleAdmin)
}

func (h *Handler) registerPatient(c echo.Context) error {
	var req registerPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || len(req.Password) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email, phone and a password of 8+ chars are required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	pat := &model.Patient{Name: req.Name, Email: req.Email, Phone: req.Phone, PasswordHash: hash}
	if err := h.svc.RegisterPatient(c.Request().Context(), pat); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, pat)
}

// refreshToken rotates the presented refresh token and mints a new access
// token. Reuse of an already-rotated token revokes everything for the
// subject.
func (h *Handler) refreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "refreshToken required")
	}
	ctx := c.Request().Context()

	rt, err := h.refresh.RefreshTokenByHash(ctx, auth.HashRefreshToken(req.RefreshToken))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if rt == nil || time.Now().After(rt.ExpiresAt) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}
	if rt.Revoked {
		_ = h.refresh.RevokeAllRefreshTokens(ctx, rt.Subject)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	newID := uuid.New().String()
	if err := h.refresh.RotateRefreshToken(ctx, rt.ID, newID, rt.Subject, rt.Role, newHash, time.Now().Add(refreshTTL)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	access, err := auth.MakeToken(rt.Subject, rt.Role, h.secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: access, RefreshToken: newRaw})
}
