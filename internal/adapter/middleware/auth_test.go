package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	userUC "huskify-backend/internal/usecase/user"
)

func TestBearerAuth(t *testing.T) {
	parse := func(raw string) (*userUC.Claims, error) {
		if raw != "good-token" {
			return nil, errors.New("bad token")
		}
		return &userUC.Claims{UserID: 7, RoleID: 2, PlatformID: 1}, nil
	}

	run := func(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set(echo.HeaderAuthorization, authHeader)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		reached := false
		handler := BearerAuth(parse)(func(c echo.Context) error {
			reached = true
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("middleware err: %v", err)
		}
		return rec, c, reached
	}

	t.Run("valid token populates the context", func(t *testing.T) {
		rec, c, reached := run(t, "Bearer good-token")
		if !reached || rec.Code != http.StatusOK {
			t.Fatalf("reached=%v code=%d", reached, rec.Code)
		}
		if got, _ := c.Get(CtxUserID).(uint64); got != 7 {
			t.Fatalf("userID = %v", c.Get(CtxUserID))
		}
		if got, _ := c.Get(CtxPlatformID).(uint64); got != 1 {
			t.Fatalf("platformID = %v", c.Get(CtxPlatformID))
		}
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _, reached := run(t, "")
		if reached || rec.Code != http.StatusUnauthorized {
			t.Fatalf("reached=%v code=%d", reached, rec.Code)
		}
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		rec, _, reached := run(t, "Basic Zm9vOmJhcg==")
		if reached || rec.Code != http.StatusUnauthorized {
			t.Fatalf("reached=%v code=%d", reached, rec.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		rec, _, reached := run(t, "Bearer tampered")
		if reached || rec.Code != http.StatusUnauthorized {
			t.Fatalf("reached=%v code=%d", reached, rec.Code)
		}
	})
}
