package catalog

import (
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type CollegeRepo interface {
	// List returns colleges by rating, best first.
	List(dbc dbctx.Context, limit int) ([]*types.College, error)
	Upsert(dbc dbctx.Context, c *types.College) (*types.College, error)
}

type collegeRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewCollegeRepo(gw gateway.Gateway, baseLog *logger.Logger) CollegeRepo {
	return &collegeRepo{gw: gw, log: baseLog.With("repo", "CollegeRepo")}
}

func (r *collegeRepo) List(dbc dbctx.Context, limit int) ([]*types.College, error) {
	var out []*types.College
	err := r.gw.SelectMany(dbc, gateway.CollectionColleges, nil,
		[]gateway.Order{gateway.Desc("rating"), gateway.Asc("name")},
		limit,
		&out,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *collegeRepo) Upsert(dbc dbctx.Context, c *types.College) (*types.College, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if err := r.gw.UpsertByKey(dbc, gateway.CollectionColleges, []string{"name"}, c); err != nil {
		return nil, err
	}
	var out types.College
	if err := r.gw.SelectOne(dbc, gateway.CollectionColleges, gateway.Filter{"name": c.Name}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type CollegeRankingRepo interface {
	// List returns rankings by all-India rank, best first.
	List(dbc dbctx.Context) ([]*types.CollegeRanking, error)
	Upsert(dbc dbctx.Context, rk *types.CollegeRanking) error
}

type collegeRankingRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewCollegeRankingRepo(gw gateway.Gateway, baseLog *logger.Logger) CollegeRankingRepo {
	return &collegeRankingRepo{gw: gw, log: baseLog.With("repo", "CollegeRankingRepo")}
}

func (r *collegeRankingRepo) List(dbc dbctx.Context) ([]*types.CollegeRanking, error) {
	var out []*types.CollegeRanking
	if err := r.gw.SelectMany(dbc, gateway.CollectionCollegeRankings, nil, []gateway.Order{gateway.Asc("all_india_rank")}, 0, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *collegeRankingRepo) Upsert(dbc dbctx.Context, rk *types.CollegeRanking) error {
	if rk.ID == uuid.Nil {
		rk.ID = uuid.New()
	}
	return r.gw.UpsertByKey(dbc, gateway.CollectionCollegeRankings, []string{"college_id"}, rk)
}
