package assessment

import (
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// StudentFormRepo maintains the legacy one-row-per-user profile mirror.
type StudentFormRepo interface {
	Upsert(dbc dbctx.Context, f *types.StudentForm) error
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.StudentForm, error)
}

type studentFormRepo struct {
	gw  gateway.Gateway
	log *logger.Logger
}

func NewStudentFormRepo(gw gateway.Gateway, baseLog *logger.Logger) StudentFormRepo {
	return &studentFormRepo{gw: gw, log: baseLog.With("repo", "StudentFormRepo")}
}

func (r *studentFormRepo) Upsert(dbc dbctx.Context, f *types.StudentForm) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return r.gw.UpsertByKey(dbc, gateway.CollectionStudentForm, []string{"user_id"}, f)
}

func (r *studentFormRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.StudentForm, error) {
	var out types.StudentForm
	err := r.gw.SelectOne(dbc, gateway.CollectionStudentForm,
		gateway.Filter{"user_id": userID},
		[]gateway.Order{gateway.Desc("created_at")},
		&out,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
