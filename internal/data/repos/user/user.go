package user

import (
	"errors"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type UserRepo interface {
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.User, error)
	// Ensure returns the stored user, creating it from u when absent.
	Ensure(dbc dbctx.Context, u *types.User) (*types.User, error)
}

type userRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewUserRepo(gw gateway.Gateway, baseLog *logger.Logger) UserRepo {
	return &userRepo{gw: gw, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.User, error) {
	var out types.User
	if err := r.gw.SelectOne(dbc, gateway.CollectionUsers, gateway.Filter{"id": id}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepo) Ensure(dbc dbctx.Context, u *types.User) (*types.User, error) {
	if u == nil || u.ID == uuid.Nil {
		return nil, errors.New("ensure user: missing id")
	}
	existing, err := r.GetByID(dbc, u.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gateway.ErrNotFound) {
		return nil, err
	}
	if u.Interests == nil {
		u.Interests = []string{}
	}
	if err := r.gw.Insert(dbc, gateway.CollectionUsers, u); err != nil {
		if errors.Is(err, gateway.ErrConflict) {
			// Lost a first-login race; the winner's row is the user.
			return r.GetByID(dbc, u.ID)
		}
		return nil, err
	}
	r.log.Debug("user created", "user_id", u.ID)
	return u, nil
}
