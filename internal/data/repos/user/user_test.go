package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(testutil.Gateway(t, db), testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	id := uuid.New()
	if _, err := repo.GetByID(dbc, id); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("GetByID (missing): err=%v, want ErrNotFound", err)
	}

	created, err := repo.Ensure(dbc, &types.User{ID: id, Email: "asha@example.com", Name: "Asha"})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if created.ID != id {
		t.Fatalf("Ensure: id=%v want %v", created.ID, id)
	}

	again, err := repo.Ensure(dbc, &types.User{ID: id, Email: "other@example.com", Name: "Other"})
	if err != nil {
		t.Fatalf("Ensure (existing): %v", err)
	}
	if again.Name != "Asha" || again.Email != "asha@example.com" {
		t.Fatalf("Ensure (existing) overwrote stored user: %+v", again)
	}

	if _, err := repo.Ensure(dbc, &types.User{}); err == nil {
		t.Fatalf("Ensure (no id): expected error")
	}
}
