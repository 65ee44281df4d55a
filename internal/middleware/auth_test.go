package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/auth"
)

const testSecret = "middleware-test-secret"

func doRequest(t *testing.T, role string, mw ...echo.MiddlewareFunc) int {
	t.Helper()

	e := echo.New()
	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		tok, err := auth.MakeToken("user@clinic.test", role, testSecret)
		if err != nil {
			t.Fatalf("make token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code
		}
		t.Fatalf("handler: %v", err)
	}
	return rec.Code
}

func TestAuth_NoToken(t *testing.T) {
	if code := doRequest(t, "", Auth(testSecret)); code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", code)
	}
}

func TestRequireRole_ExactMatch(t *testing.T) {
	if code := doRequest(t, "patient", Auth(testSecret), RequireRole("patient")); code != http.StatusOK {
		t.Errorf("patient behind patient gate: code = %d, want 200", code)
	}
}

// no hierarchy: admin must not pass a doctor gate
func TestRequireRole_AdminDoesNotEscalate(t *testing.T) {
	if code := doRequest(t, "admin", Auth(testSecret), RequireRole("doctor")); code != http.StatusForbidden {
		t.Errorf("admin behind doctor gate: code = %d, want 403", code)
	}
}

func TestRequireAnyRole(t *testing.T) {
	if code := doRequest(t, "doctor", Auth(testSecret), RequireAnyRole("doctor", "admin")); code != http.StatusOK {
		t.Errorf("doctor behind doctor-or-admin gate: code = %d, want 200", code)
	}
	if code := doRequest(t, "patient", Auth(testSecret), RequireAnyRole("doctor", "admin")); code != http.StatusForbidden {
		t.Errorf("patient behind doctor-or-admin gate: code = %d, want 403", code)
	}
}
