package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type UserService interface {
	// GetMe returns the caller's profile row, creating it on first sight.
	GetMe(ctx context.Context) (*types.User, error)
}

type userService struct {
	log   *logger.Logger
	users repos.UserRepo
}

func NewUserService(log *logger.Logger, users repos.UserRepo) UserService {
	return &userService{log: log.With("service", "UserService"), users: users}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
	}
	u, err := us.users.Ensure(dbctx.Context{Ctx: ctx}, &types.User{
		ID:    rd.UserID,
		Email: rd.Email,
		Name:  rd.DisplayName,
	})
	if err != nil {
		us.log.Error("ensure user failed", "user_id", rd.UserID, "error", err)
		return nil, apierr.Internal("load_user_failed", err)
	}
	return u, nil
}
