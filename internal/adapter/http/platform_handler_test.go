package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainOrgunit "huskify-backend/internal/domain/orgunit"
	domainPlatform "huskify-backend/internal/domain/platform"
	"huskify-backend/internal/testutil/platformmock"
)

type orgunitStub struct{}

func (orgunitStub) ListJobFamilies(context.Context) ([]domainOrgunit.JobFamily, error) {
	return []domainOrgunit.JobFamily{{ID: 1, Name: "Engineering"}}, nil
}
func (orgunitStub) ListLabs(context.Context) ([]domainOrgunit.Lab, error) {
	return []domainOrgunit.Lab{{ID: 1, Name: "Payments Lab"}}, nil
}
func (orgunitStub) ListFeatureTeams(context.Context) ([]domainOrgunit.FeatureTeam, error) {
	return []domainOrgunit.FeatureTeam{{ID: 1, Name: "Checkout", LabID: 1}}, nil
}

func TestPlatformHandler_List(t *testing.T) {
	platforms := &platformmock.Repo{
		ListAllFn: func(context.Context) ([]domainPlatform.Platform, error) {
			return []domainPlatform.Platform{{ID: 1, Name: "corp"}}, nil
		},
	}
	h := NewPlatformHandler(platforms, orgunitStub{}, "k3y")

	t.Run("valid api key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/platform", nil)
		req.Header.Set("X-Api-Key", "k3y")
		rec := httptest.NewRecorder()

		if err := h.List(newEcho().NewContext(req, rec)); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "corp") {
			t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("wrong api key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/platform", nil)
		req.Header.Set("X-Api-Key", "wrong")
		rec := httptest.NewRecorder()

		if err := h.List(newEcho().NewContext(req, rec)); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("code = %d, want 401", rec.Code)
		}
	})
}

func TestPlatformHandler_OrgUnits(t *testing.T) {
	h := NewPlatformHandler(&platformmock.Repo{}, orgunitStub{}, "k3y")

	req := httptest.NewRequest(http.MethodGet, "/api/feature-team", nil)
	rec := httptest.NewRecorder()
	if err := h.FeatureTeams(newEcho().NewContext(req, rec)); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Checkout") {
		t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
	}
}
