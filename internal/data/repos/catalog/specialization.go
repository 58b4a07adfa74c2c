package catalog

import (
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type SpecializationRepo interface {
	ListByDegree(dbc dbctx.Context, degreeID uuid.UUID) ([]*types.Specialization, error)
	// GetInDegree returns the specialization only when it belongs to degreeID.
	GetInDegree(dbc dbctx.Context, degreeID, specializationID uuid.UUID) (*types.Specialization, error)
	Upsert(dbc dbctx.Context, s *types.Specialization) (*types.Specialization, error)
}

type specializationRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewSpecializationRepo(gw gateway.Gateway, baseLog *logger.Logger) SpecializationRepo {
	return &specializationRepo{gw: gw, log: baseLog.With("repo", "SpecializationRepo")}
}

func (r *specializationRepo) ListByDegree(dbc dbctx.Context, degreeID uuid.UUID) ([]*types.Specialization, error) {
	var out []*types.Specialization
	err := r.gw.SelectMany(dbc, gateway.CollectionSpecializations,
		gateway.Filter{"degree_id": degreeID},
		[]gateway.Order{gateway.Asc("name")},
		0,
		&out,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *specializationRepo) GetInDegree(dbc dbctx.Context, degreeID, specializationID uuid.UUID) (*types.Specialization, error) {
	var out types.Specialization
	err := r.gw.SelectOne(dbc, gateway.CollectionSpecializations,
		gateway.Filter{"id": specializationID, "degree_id": degreeID},
		nil,
		&out,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *specializationRepo) Upsert(dbc dbctx.Context, s *types.Specialization) (*types.Specialization, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if err := r.gw.UpsertByKey(dbc, gateway.CollectionSpecializations, []string{"code"}, s); err != nil {
		return nil, err
	}
	var out types.Specialization
	if err := r.gw.SelectOne(dbc, gateway.CollectionSpecializations, gateway.Filter{"code": s.Code}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
