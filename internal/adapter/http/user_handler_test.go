package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domainUser "huskify-backend/internal/domain/user"
	"huskify-backend/internal/testutil/usermock"
	userUC "huskify-backend/internal/usecase/user"
)

func TestUserHandler_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*domainUser.User, error) {
			if email != "lead@corp.io" {
				return nil, gorm.ErrRecordNotFound
			}
			return &domainUser.User{ID: 5, Email: email, PasswordHash: string(hash), Name: "Lead", RoleID: 2, PlatformID: 1}, nil
		},
	}
	h := NewUserHandler(userUC.NewUsecase(repo, "secret", time.Hour))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.Login(newEcho().NewContext(req, rec)); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		return rec
	}

	t.Run("valid credentials", func(t *testing.T) {
		rec := post(`{"email":"lead@corp.io","password":"hunter22"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"userId":5`) || !strings.Contains(body, `"data":`) {
			t.Fatalf("login payload missing token or user id: %s", body)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := post(`{"email":"lead@corp.io","password":"nope"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("not an email", func(t *testing.T) {
		rec := post(`{"email":"not-an-email","password":"x"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("code = %d, want 422", rec.Code)
		}
	})
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("creates on the resolved platform", func(t *testing.T) {
		var created *domainUser.User
		repo := &usermock.Repo{
			GetByEmailFn: func(context.Context, string) (*domainUser.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, u *domainUser.User) error {
				created = u
				return nil
			},
		}
		h := NewUserHandler(userUC.NewUsecase(repo, "secret", time.Hour))

		body := `{"email":"new@corp.io","password":"longenough","name":"New Hire"}`
		req := httptest.NewRequest(http.MethodPost, "/user/create", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)
		c.Set("platformID", uint64(3))

		if err := h.Register(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
		}
		if created == nil || created.PlatformID != 3 {
			t.Fatalf("platform not threaded from context: %+v", created)
		}
	})

	t.Run("short password", func(t *testing.T) {
		h := NewUserHandler(userUC.NewUsecase(&usermock.Repo{}, "secret", time.Hour))
		body := `{"email":"new@corp.io","password":"short","name":"New Hire"}`
		req := httptest.NewRequest(http.MethodPost, "/user/create", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		if err := h.Register(newEcho().NewContext(req, rec)); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("code = %d, want 422", rec.Code)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := &usermock.Repo{
			GetByEmailFn: func(context.Context, string) (*domainUser.User, error) {
				return &domainUser.User{ID: 1}, nil
			},
		}
		h := NewUserHandler(userUC.NewUsecase(repo, "secret", time.Hour))
		body := `{"email":"dup@corp.io","password":"longenough","name":"Dup"}`
		req := httptest.NewRequest(http.MethodPost, "/user/create", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		if err := h.Register(newEcho().NewContext(req, rec)); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusConflict {
			t.Fatalf("code = %d, want 409", rec.Code)
		}
	})
}
