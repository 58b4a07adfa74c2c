package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type AssessmentRepo interface {
	Create(dbc dbctx.Context, a *types.Assessment) (*types.Assessment, error)
	// GetLatest returns the newest assessment of assessmentType for the user,
	// or gateway.ErrNotFound.
	GetLatest(dbc dbctx.Context, userID uuid.UUID, assessmentType string) (*types.Assessment, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.Assessment, error)
}

type assessmentRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewAssessmentRepo(gw gateway.Gateway, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{gw: gw, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) Create(dbc dbctx.Context, a *types.Assessment) (*types.Assessment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CompletedAt.IsZero() {
		a.CompletedAt = time.Now().UTC()
	}
	if a.Scores == nil {
		a.Scores = datatypes.JSON([]byte("{}"))
	}
	if a.PersonalityTraits == nil {
		a.PersonalityTraits = datatypes.JSON([]byte("{}"))
	}
	if err := r.gw.Insert(dbc, gateway.CollectionAssessments, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *assessmentRepo) GetLatest(dbc dbctx.Context, userID uuid.UUID, assessmentType string) (*types.Assessment, error) {
	var out types.Assessment
	err := r.gw.SelectOne(dbc, gateway.CollectionAssessments,
		gateway.Filter{"user_id": userID, "assessment_type": assessmentType},
		[]gateway.Order{gateway.Desc("created_at"), gateway.Desc("completed_at")},
		&out,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *assessmentRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.Assessment, error) {
	var out []*types.Assessment
	err := r.gw.SelectMany(dbc, gateway.CollectionAssessments,
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
