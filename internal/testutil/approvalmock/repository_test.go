package approvalmock

import (
	"context"
	"errors"
	"testing"

	domain "huskify-backend/internal/domain/approval"
)

func TestRepo_CreateBatch(t *testing.T) {
	ctx := context.Background()
	batch := []*domain.Record{{ApprovalID: "a1", HuskyID: 123, Level: 1}}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateBatchFn: func(gotCtx context.Context, got []*domain.Record) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if len(got) != 1 || got[0] != batch[0] {
				t.Fatalf("arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.CreateBatch(ctx, batch); !errors.Is(err, wantErr) {
		t.Fatalf("CreateBatch: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateBatchFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch default: want nil, got %v", err)
	}
}

func TestRepo_GetByApprovalID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Record{ApprovalID: "a2", HuskyID: 456}

	called := false
	m := &Repo{
		GetByApprovalIDFn: func(gotCtx context.Context, id string) (*domain.Record, error) {
			called = true
			if id != "a2" {
				t.Fatalf("id = %s, want a2", id)
			}
			return want, nil
		},
	}
	got, err := m.GetByApprovalID(ctx, "a2")
	if err != nil || got != want {
		t.Fatalf("GetByApprovalID: got %v, %v", got, err)
	}
	if !called {
		t.Fatalf("GetByApprovalIDFn not called")
	}

	// Default (nil func) → context.Canceled so misuse shows up in tests
	m = &Repo{}
	if _, err := m.GetByApprovalID(ctx, "a2"); !errors.Is(err, context.Canceled) {
		t.Fatalf("default GetByApprovalID err = %v, want context.Canceled", err)
	}
}

func TestRepo_ListByHuskyID_Default(t *testing.T) {
	m := &Repo{}
	got, err := m.ListByHuskyID(context.Background(), 1)
	if err != nil || got != nil {
		t.Fatalf("default ListByHuskyID = %v, %v; want nil, nil", got, err)
	}
}
