package catalog

import (
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type DegreeRepo interface {
	List(dbc dbctx.Context) ([]*types.Degree, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Degree, error)
	GetByCode(dbc dbctx.Context, code string) (*types.Degree, error)
	// Upsert writes d keyed by its code and returns the stored row.
	Upsert(dbc dbctx.Context, d *types.Degree) (*types.Degree, error)
}

type degreeRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewDegreeRepo(gw gateway.Gateway, baseLog *logger.Logger) DegreeRepo {
	return &degreeRepo{gw: gw, log: baseLog.With("repo", "DegreeRepo")}
}

func (r *degreeRepo) List(dbc dbctx.Context) ([]*types.Degree, error) {
	var out []*types.Degree
	if err := r.gw.SelectMany(dbc, gateway.CollectionDegrees, nil, []gateway.Order{gateway.Asc("name")}, 0, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *degreeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Degree, error) {
	var out types.Degree
	if err := r.gw.SelectOne(dbc, gateway.CollectionDegrees, gateway.Filter{"id": id}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *degreeRepo) GetByCode(dbc dbctx.Context, code string) (*types.Degree, error) {
	var out types.Degree
	if err := r.gw.SelectOne(dbc, gateway.CollectionDegrees, gateway.Filter{"code": code}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *degreeRepo) Upsert(dbc dbctx.Context, d *types.Degree) (*types.Degree, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if err := r.gw.UpsertByKey(dbc, gateway.CollectionDegrees, []string{"code"}, d); err != nil {
		return nil, err
	}
	return r.GetByCode(dbc, d.Code)
}
