package catalog

import (
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type CareerRoadmapRepo interface {
	GetBySpecialization(dbc dbctx.Context, specializationID uuid.UUID) (*types.CareerRoadmap, error)
	Upsert(dbc dbctx.Context, r *types.CareerRoadmap) error
}

type careerRoadmapRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewCareerRoadmapRepo(gw gateway.Gateway, baseLog *logger.Logger) CareerRoadmapRepo {
	return &careerRoadmapRepo{gw: gw, log: baseLog.With("repo", "CareerRoadmapRepo")}
}

func (r *careerRoadmapRepo) GetBySpecialization(dbc dbctx.Context, specializationID uuid.UUID) (*types.CareerRoadmap, error) {
	var out types.CareerRoadmap
	err := r.gw.SelectOne(dbc, gateway.CollectionCareerRoadmaps,
		gateway.Filter{"specialization_id": specializationID},
		nil,
		&out,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *careerRoadmapRepo) Upsert(dbc dbctx.Context, rm *types.CareerRoadmap) error {
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	return r.gw.UpsertByKey(dbc, gateway.CollectionCareerRoadmaps, []string{"specialization_id"}, rm)
}

type UserRoadmapRepo interface {
	Create(dbc dbctx.Context, ur *types.UserRoadmap) (*types.UserRoadmap, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.UserRoadmap, error)
}

type userRoadmapRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewUserRoadmapRepo(gw gateway.Gateway, baseLog *logger.Logger) UserRoadmapRepo {
	return &userRoadmapRepo{gw: gw, log: baseLog.With("repo", "UserRoadmapRepo")}
}

func (r *userRoadmapRepo) Create(dbc dbctx.Context, ur *types.UserRoadmap) (*types.UserRoadmap, error) {
	if ur.ID == uuid.Nil {
		ur.ID = uuid.New()
	}
	if err := r.gw.Insert(dbc, gateway.CollectionUserRoadmaps, ur); err != nil {
		return nil, err
	}
	return ur, nil
}

func (r *userRoadmapRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.UserRoadmap, error) {
	var out []*types.UserRoadmap
	err := r.gw.SelectMany(dbc, gateway.CollectionUserRoadmaps,
		gateway.Filter{"user_id": userID},
		[]gateway.Order{gateway.Desc("created_at")},
		limit,
		&out,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
