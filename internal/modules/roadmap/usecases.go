// Package roadmap serves degree/specialization reference data and the career
// roadmap stored for each specialization.
package roadmap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const redirectStreams = "/streams"

var ErrMissingSelection = errors.New("select both a degree and a specialization")

type View struct {
	Degree         *types.Degree         `json:"degree"`
	Specialization *types.Specialization `json:"specialization"`
	Roadmap        *types.CareerRoadmap  `json:"roadmap"`
}

type UsecasesDeps struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	Degrees         repos.DegreeRepo
	Specializations repos.SpecializationRepo
	Roadmaps        repos.CareerRoadmapRepo
	UserRoadmaps    repos.UserRoadmapRepo

	// Optional read-through cache for found views.
	Cache Cache
}

type Usecases struct {
	deps   UsecasesDeps
	flight *singleflight.Group
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("service", "RoadmapUsecases")
	return Usecases{deps: deps, flight: &singleflight.Group{}}
}

func (u Usecases) ListDegrees(ctx context.Context) ([]*types.Degree, error) {
	out, err := u.deps.Degrees.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.Internal("list_degrees_failed", err)
	}
	return out, nil
}

func (u Usecases) ListSpecializations(ctx context.Context, degreeID uuid.UUID) ([]*types.Specialization, error) {
	if degreeID == uuid.Nil {
		return nil, apierr.BadRequest("missing_degree", errors.New("degree id required"))
	}
	dbc := dbctx.Context{Ctx: ctx}
	if _, err := u.deps.Degrees.GetByID(dbc, degreeID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, apierr.NotFound("degree_not_found", err)
		}
		return nil, apierr.Internal("load_degree_failed", err)
	}
	out, err := u.deps.Specializations.ListByDegree(dbc, degreeID)
	if err != nil {
		return nil, apierr.Internal("list_specializations_failed", err)
	}
	return out, nil
}

// GetRoadmap resolves the pair to its roadmap. Concurrent identical lookups
// share one store round trip; only found views are cached.
func (u Usecases) GetRoadmap(ctx context.Context, degreeID, specializationID uuid.UUID) (*View, error) {
	if degreeID == uuid.Nil || specializationID == uuid.Nil {
		return nil, apierr.BadRequest("missing_selection", ErrMissingSelection).WithRedirect(redirectStreams)
	}
	if v, ok := u.cached(ctx, degreeID, specializationID); ok {
		u.deps.Metrics.IncRoadmapLookup("found")
		return v, nil
	}

	// The shared load outlives any single caller; each caller only stops
	// waiting when its own context ends.
	lctx := context.WithoutCancel(ctx)
	key := cacheKey(degreeID, specializationID)
	ch := u.flight.DoChan(key, func() (any, error) {
		v, err := u.load(lctx, degreeID, specializationID)
		if err != nil {
			return nil, err
		}
		u.store(lctx, v)
		return v, nil
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		u.deps.Metrics.IncRoadmapLookup("canceled")
		return nil, ctx.Err()
	case res = <-ch:
	}
	if err := res.Err; err != nil {
		var nf *RoadmapNotFoundError
		if errors.As(err, &nf) {
			u.deps.Metrics.IncRoadmapLookup("not_found")
			return nil, apierr.NotFound("roadmap_not_found", err).WithRedirect(redirectStreams)
		}
		u.deps.Metrics.IncRoadmapLookup("error")
		u.deps.Log.Error("roadmap lookup failed", "degree_id", degreeID, "specialization_id", specializationID, "error", err)
		return nil, apierr.Internal("load_roadmap_failed", err)
	}
	u.deps.Metrics.IncRoadmapLookup("found")
	return res.Val.(*View), nil
}

func (u Usecases) load(ctx context.Context, degreeID, specializationID uuid.UUID) (*View, error) {
	dbc := dbctx.Context{Ctx: ctx}
	notFound := func(missing string) error {
		return &RoadmapNotFoundError{DegreeID: degreeID, SpecializationID: specializationID, Missing: missing}
	}

	degree, err := u.deps.Degrees.GetByID(dbc, degreeID)
	if errors.Is(err, gateway.ErrNotFound) {
		return nil, notFound("degree")
	} else if err != nil {
		return nil, fmt.Errorf("load degree: %w", err)
	}
	spec, err := u.deps.Specializations.GetInDegree(dbc, degreeID, specializationID)
	if errors.Is(err, gateway.ErrNotFound) {
		return nil, notFound("specialization")
	} else if err != nil {
		return nil, fmt.Errorf("load specialization: %w", err)
	}
	rm, err := u.deps.Roadmaps.GetBySpecialization(dbc, specializationID)
	if errors.Is(err, gateway.ErrNotFound) {
		return nil, notFound("roadmap")
	} else if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	return &View{Degree: degree, Specialization: spec, Roadmap: rm}, nil
}

func (u Usecases) cached(ctx context.Context, degreeID, specializationID uuid.UUID) (*View, bool) {
	if u.deps.Cache == nil {
		return nil, false
	}
	v, ok, err := u.deps.Cache.Get(ctx, degreeID, specializationID)
	switch {
	case err != nil:
		u.deps.Metrics.IncRoadmapCache("error")
		u.deps.Log.Warn("roadmap cache read failed; using store", "error", err)
		return nil, false
	case !ok:
		u.deps.Metrics.IncRoadmapCache("miss")
		return nil, false
	}
	u.deps.Metrics.IncRoadmapCache("hit")
	return v, true
}

func (u Usecases) store(ctx context.Context, v *View) {
	if u.deps.Cache == nil {
		return
	}
	if err := u.deps.Cache.Set(ctx, v); err != nil {
		u.deps.Log.Warn("roadmap cache write failed", "error", err)
	}
}

type Selection struct {
	Saved     bool       `json:"saved"`
	RoadmapID *uuid.UUID `json:"roadmap_id,omitempty"`
	Redirect  string     `json:"redirect"`
}

// SaveSelection records the user's choice before the client opens the
// roadmap. A failed write is logged and the redirect is still returned.
func (u Usecases) SaveSelection(ctx context.Context, userID, degreeID, specializationID uuid.UUID) (*Selection, error) {
	if degreeID == uuid.Nil || specializationID == uuid.Nil {
		return nil, apierr.BadRequest("missing_selection", ErrMissingSelection)
	}
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", nil)
	}
	out := &Selection{Redirect: roadmapRoute(degreeID, specializationID)}

	row := &types.UserRoadmap{UserID: userID, DegreeID: degreeID, SpecializationID: specializationID}
	if v, err := u.GetRoadmap(ctx, degreeID, specializationID); err == nil && v.Roadmap != nil {
		id := v.Roadmap.ID
		row.RoadmapID = &id
		out.RoadmapID = &id
	}
	if _, err := u.deps.UserRoadmaps.Create(dbctx.Context{Ctx: ctx}, row); err != nil {
		u.deps.Log.Warn("saving roadmap selection failed", "user_id", userID, "error", err)
		return out, nil
	}
	out.Saved = true
	return out, nil
}

func (u Usecases) ListSelections(ctx context.Context, userID uuid.UUID, limit int) ([]*types.UserRoadmap, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	out, err := u.deps.UserRoadmaps.ListByUser(dbctx.Context{Ctx: ctx}, userID, limit)
	if err != nil {
		return nil, apierr.Internal("list_selections_failed", err)
	}
	return out, nil
}

func roadmapRoute(degreeID, specializationID uuid.UUID) string {
	q := url.Values{}
	q.Set("degree", degreeID.String())
	q.Set("specialization", specializationID.String())
	return "/roadmap?" + q.Encode()
}
