package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/modules/intake"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

var errNoSession = errors.New("no assessment in progress")

type IntakeHandler struct {
	log       *logger.Logger
	registry  *intake.Registry
	submitter intake.Submitter
	metrics   *observability.Metrics
}

type IntakeHandlerDeps struct {
	Log       *logger.Logger
	Registry  *intake.Registry
	Submitter intake.Submitter
	Metrics   *observability.Metrics
}

func NewIntakeHandlerWithDeps(deps IntakeHandlerDeps) *IntakeHandler {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &IntakeHandler{
		log:       log.With("handler", "IntakeHandler"),
		registry:  deps.Registry,
		submitter: deps.Submitter,
		metrics:   deps.Metrics,
	}
}

type sessionView struct {
	Progress  intake.Progress        `json:"progress"`
	Current   assessment.Question    `json:"current"`
	Questions assessment.QuestionSet `json:"question_set"`
	Answers   assessment.RawAnswers  `json:"answers"`
}

func viewOf(col *intake.Collector) sessionView {
	p := col.Progress()
	set := col.Questions()
	v := sessionView{Progress: p, Questions: set, Answers: col.Answers()}
	if p.Index >= 0 && p.Index < set.Len() {
		v.Current = set.Questions[p.Index]
	}
	return v
}

func (h *IntakeHandler) collector(c *gin.Context) (*intake.Collector, bool) {
	rd, ok := requestUser(c)
	if !ok {
		return nil, false
	}
	col, found := h.registry.Get(rd.UserID)
	if !found {
		response.RespondAPIError(c, apierr.NotFound("no_intake_session", errNoSession).WithRedirect("/assessment"), "")
		return nil, false
	}
	return col, true
}

type startSessionRequest struct {
	SchemaVersion assessment.SchemaVersion `json:"schema_version"`
}

// POST /api/assessment/session
func (h *IntakeHandler) StartSession(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	var req startSessionRequest
	// An empty body starts the default questionnaire.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.SchemaVersion == "" {
		req.SchemaVersion = assessment.DefaultVersion
	}
	col, err := h.registry.Start(rd.UserID, req.SchemaVersion)
	if err != nil {
		response.RespondAPIError(c, intake.APIError(err), "start_session_failed")
		return
	}
	h.metrics.SetIntakeSessions(h.registry.Len())
	response.RespondCreated(c, viewOf(col))
}

// GET /api/assessment/session
func (h *IntakeHandler) GetSession(c *gin.Context) {
	col, ok := h.collector(c)
	if !ok {
		return
	}
	response.RespondOK(c, viewOf(col))
}

type selectAnswerRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// PUT /api/assessment/session/answers
func (h *IntakeHandler) SelectAnswer(c *gin.Context) {
	col, ok := h.collector(c)
	if !ok {
		return
	}
	var req selectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := col.SelectOption(req.Key, req.Value); err != nil {
		response.RespondAPIError(c, intake.APIError(err), "select_answer_failed")
		return
	}
	response.RespondOK(c, viewOf(col))
}

type goToRequest struct {
	Index *int `json:"index" binding:"required"`
}

// POST /api/assessment/session/goto
func (h *IntakeHandler) GoTo(c *gin.Context) {
	col, ok := h.collector(c)
	if !ok {
		return
	}
	var req goToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := col.GoToQuestion(*req.Index); err != nil {
		response.RespondAPIError(c, intake.APIError(err), "goto_failed")
		return
	}
	response.RespondOK(c, viewOf(col))
}

// POST /api/assessment/session/submit
func (h *IntakeHandler) Submit(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	col, ok := h.collector(c)
	if !ok {
		return
	}
	out, err := col.Submit(c.Request.Context(), h.submitter, rd.UserID, rd.DisplayName)
	if err != nil {
		response.RespondAPIError(c, intake.APIError(err), "submit_assessment_failed")
		return
	}
	h.registry.DiscardIf(rd.UserID, col)
	h.metrics.SetIntakeSessions(h.registry.Len())
	response.RespondCreated(c, out)
}
