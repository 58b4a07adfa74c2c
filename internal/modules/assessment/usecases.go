// Package assessment stores finished questionnaires and serves the
// recommendations derived from them.
package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	domainasmt "github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/modules/intake"
	"github.com/yungbote/careerpath-backend/internal/modules/recommendation"
	"github.com/yungbote/careerpath-backend/internal/normalization"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// ErrNoAssessment means the user has never completed the questionnaire.
var ErrNoAssessment = errors.New("no completed assessment")

const redirectAssessment = "/assessment"

type UsecasesDeps struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	Assessments  repos.AssessmentRepo
	StudentForms repos.StudentFormRepo
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("service", "AssessmentUsecases")
	return Usecases{deps: deps}
}

var _ intake.Submitter = Usecases{}

// Submit stores the assessment, mirrors it into student_form and derives the
// bundle. Only the assessment insert can fail the call.
func (u Usecases) Submit(ctx context.Context, s intake.Submission) (*intake.Outcome, error) {
	if s.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", nil)
	}
	questions, err := json.Marshal(s.Questions)
	if err != nil {
		return nil, apierr.Internal("encode_questions_failed", err)
	}
	answers, err := json.Marshal(s.Raw)
	if err != nil {
		return nil, apierr.Internal("encode_answers_failed", err)
	}
	record, err := json.Marshal(s.Record)
	if err != nil {
		return nil, apierr.Internal("encode_record_failed", err)
	}

	dbc := dbctx.Context{Ctx: ctx}
	row, err := u.deps.Assessments.Create(dbc, &types.Assessment{
		UserID:         s.UserID,
		AssessmentType: domainasmt.TypeCareerSurvey,
		SchemaVersion:  string(s.Version),
		Questions:      datatypes.JSON(questions),
		Answers:        datatypes.JSON(answers),
		Record:         datatypes.JSON(record),
		CompletedAt:    time.Now().UTC(),
	})
	if err != nil {
		u.deps.Log.Error("assessment insert failed", "user_id", s.UserID, "error", err)
		return nil, apierr.Internal("assessment_store_failed", err)
	}
	u.deps.Metrics.IncAssessmentSubmitted(string(s.Version))

	u.mirrorLegacy(dbc, s)

	bundle := recommendation.Derive(s.Record)
	u.deps.Metrics.IncDerivation(bundle.RecommendedStream)
	return &intake.Outcome{
		AssessmentID: row.ID,
		CompletedAt:  row.CompletedAt,
		Record:       s.Record,
		Bundle:       bundle,
	}, nil
}

// mirrorLegacy keeps the one-row-per-user student_form profile current. The
// assessment is already stored, so a failure here is only logged.
func (u Usecases) mirrorLegacy(dbc dbctx.Context, s intake.Submission) {
	if u.deps.StudentForms == nil {
		return
	}
	form := normalization.LegacyProfile(s.UserID, s.DisplayName, s.Record)
	if err := u.deps.StudentForms.Upsert(dbc, &form); err != nil {
		u.deps.Metrics.IncLegacyMirrorFailure()
		u.deps.Log.Warn("student_form mirror failed; assessment kept", "user_id", s.UserID, "error", err)
	}
}

type SubmitRawInput struct {
	UserID        uuid.UUID
	DisplayName   string
	SchemaVersion domainasmt.SchemaVersion
	// Answers is the decoded JSON answer document.
	Answers any
}

// SubmitRaw is the one-shot path for clients that collect answers themselves.
func (u Usecases) SubmitRaw(ctx context.Context, in SubmitRawInput) (*intake.Outcome, error) {
	version := in.SchemaVersion
	if version == "" {
		version = domainasmt.DefaultVersion
	}
	set, err := domainasmt.Lookup(version)
	if err != nil {
		return nil, intake.APIError(err)
	}
	raw, err := normalization.Validate(in.Answers, version)
	if err != nil {
		return nil, intake.APIError(err)
	}
	if err := domainasmt.CheckComplete(set, raw); err != nil {
		return nil, intake.APIError(err)
	}
	rec, err := normalization.Normalize(raw, version)
	if err != nil {
		return nil, intake.APIError(err)
	}
	return u.Submit(ctx, intake.Submission{
		UserID:      in.UserID,
		DisplayName: in.DisplayName,
		Version:     version,
		Questions:   set.Titles(),
		Raw:         raw,
		Record:      rec,
	})
}

const (
	SourceAssessment  = "assessment"
	SourceStudentForm = "student_form"
)

type LatestView struct {
	AssessmentID  *uuid.UUID               `json:"assessment_id,omitempty"`
	Source        string                   `json:"source"`
	SchemaVersion domainasmt.SchemaVersion `json:"schema_version"`
	CompletedAt   *time.Time               `json:"completed_at,omitempty"`
	Answers       domainasmt.RawAnswers    `json:"answers,omitempty"`
	Record        domainasmt.AnswerRecord  `json:"record"`
	Bundle        recommendation.Bundle    `json:"recommendations"`
}

// Latest returns the user's newest career survey with its bundle. Users who
// only have a student_form row are served from that row.
func (u Usecases) Latest(ctx context.Context, userID uuid.UUID) (*LatestView, error) {
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", nil)
	}
	dbc := dbctx.Context{Ctx: ctx}
	row, err := u.deps.Assessments.GetLatest(dbc, userID, domainasmt.TypeCareerSurvey)
	switch {
	case err == nil:
		return u.viewFromAssessment(row)
	case !errors.Is(err, gateway.ErrNotFound):
		return nil, apierr.Internal("load_assessment_failed", err)
	}

	if u.deps.StudentForms != nil {
		form, ferr := u.deps.StudentForms.GetByUserID(dbc, userID)
		switch {
		case ferr == nil:
			rec := normalization.RecordFromLegacy(*form)
			created := form.CreatedAt
			return &LatestView{
				Source:        SourceStudentForm,
				SchemaVersion: rec.SchemaVersion,
				CompletedAt:   &created,
				Record:        rec,
				Bundle:        recommendation.Derive(rec),
			}, nil
		case !errors.Is(ferr, gateway.ErrNotFound):
			return nil, apierr.Internal("load_student_form_failed", ferr)
		}
	}
	return nil, apierr.NotFound("assessment_not_found", ErrNoAssessment).WithRedirect(redirectAssessment)
}

func (u Usecases) Recommendations(ctx context.Context, userID uuid.UUID) (*recommendation.Bundle, error) {
	view, err := u.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &view.Bundle, nil
}

type HistoryItem struct {
	AssessmentID  uuid.UUID                `json:"assessment_id"`
	SchemaVersion domainasmt.SchemaVersion `json:"schema_version"`
	CompletedAt   time.Time                `json:"completed_at"`
	Stream        string                   `json:"recommended_stream"`
}

func (u Usecases) History(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryItem, error) {
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", nil)
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	rows, err := u.deps.Assessments.ListByUser(dbctx.Context{Ctx: ctx}, userID, limit)
	if err != nil {
		return nil, apierr.Internal("list_assessments_failed", err)
	}
	out := make([]HistoryItem, 0, len(rows))
	for _, row := range rows {
		rec, err := recordOf(row)
		if err != nil {
			u.deps.Log.Warn("skipping unreadable assessment", "assessment_id", row.ID, "error", err)
			continue
		}
		out = append(out, HistoryItem{
			AssessmentID:  row.ID,
			SchemaVersion: domainasmt.SchemaVersion(row.SchemaVersion),
			CompletedAt:   row.CompletedAt,
			Stream:        recommendation.Derive(rec).RecommendedStream,
		})
	}
	return out, nil
}

func (u Usecases) viewFromAssessment(row *types.Assessment) (*LatestView, error) {
	rec, err := recordOf(row)
	if err != nil {
		return nil, apierr.Internal("decode_assessment_failed", err)
	}
	var raw domainasmt.RawAnswers
	if len(row.Answers) > 0 {
		if err := json.Unmarshal(row.Answers, &raw); err != nil {
			u.deps.Log.Warn("unreadable stored answers", "assessment_id", row.ID, "error", err)
		}
	}
	id, completed := row.ID, row.CompletedAt
	return &LatestView{
		AssessmentID:  &id,
		Source:        SourceAssessment,
		SchemaVersion: rec.SchemaVersion,
		CompletedAt:   &completed,
		Answers:       raw,
		Record:        rec,
		Bundle:        recommendation.Derive(rec),
	}, nil
}

// recordOf reads the stored canonical record, re-normalizing the raw answers
// for rows written before the record column existed.
func recordOf(row *types.Assessment) (domainasmt.AnswerRecord, error) {
	var rec domainasmt.AnswerRecord
	if len(row.Record) > 0 && string(row.Record) != "null" {
		if err := json.Unmarshal(row.Record, &rec); err != nil {
			return rec, fmt.Errorf("decode record: %w", err)
		}
		if rec.SchemaVersion == "" {
			rec.SchemaVersion = domainasmt.SchemaVersion(row.SchemaVersion)
		}
		return rec, nil
	}
	var raw domainasmt.RawAnswers
	if err := json.Unmarshal(row.Answers, &raw); err != nil {
		return rec, fmt.Errorf("decode answers: %w", err)
	}
	version := domainasmt.SchemaVersion(row.SchemaVersion)
	if version == "" {
		version = domainasmt.DefaultVersion
	}
	return normalization.Normalize(raw, version)
}
