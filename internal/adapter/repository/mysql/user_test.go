package mysql

import (
	"context"
	"errors"
	"testing"

	platformDomain "huskify-backend/internal/domain/platform"
	userDomain "huskify-backend/internal/domain/user"

	"gorm.io/gorm"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &userDomain.User{Email: "lead@corp.io", PasswordHash: "x", Name: "Lead", RoleID: 2, PlatformID: 1}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byEmail, err := repo.GetByEmail(ctx, "lead@corp.io")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("GetByEmail: %+v, %v", byEmail, err)
	}
	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil || byID.Email != "lead@corp.io" {
		t.Fatalf("GetByID: %+v, %v", byID, err)
	}

	if _, err := repo.GetByEmail(ctx, "ghost@corp.io"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user: want ErrRecordNotFound, got %v", err)
	}
}

func TestUserRepository_ListByPlatformID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, u := range []*userDomain.User{
		{Email: "b@corp.io", PasswordHash: "x", Name: "Bea", RoleID: 1, PlatformID: 1},
		{Email: "a@corp.io", PasswordHash: "x", Name: "Abe", RoleID: 1, PlatformID: 1},
		{Email: "c@other.io", PasswordHash: "x", Name: "Cam", RoleID: 1, PlatformID: 2},
	} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByPlatformID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByPlatformID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// ordered by name
	if got[0].Name != "Abe" || got[1].Name != "Bea" {
		t.Fatalf("order = %s, %s", got[0].Name, got[1].Name)
	}
}

func TestPlatformRepository_GetByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	if err := db.Create(&platformDomain.Platform{Name: "corp"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.GetByName(ctx, "corp")
	if err != nil || got.Name != "corp" {
		t.Fatalf("GetByName: %+v, %v", got, err)
	}

	if _, err := repo.GetByName(ctx, "ghost"); !errors.Is(err, platformDomain.ErrNotFound) {
		t.Fatalf("missing platform: want ErrNotFound, got %v", err)
	}
}
