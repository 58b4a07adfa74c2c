package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainasmt "github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/modules/assessment"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type AssessmentHandler struct {
	log         *logger.Logger
	assessments assessment.Usecases
}

func NewAssessmentHandler(log *logger.Logger, assessments assessment.Usecases) *AssessmentHandler {
	return &AssessmentHandler{log: log.With("handler", "AssessmentHandler"), assessments: assessments}
}

type submitAssessmentRequest struct {
	SchemaVersion domainasmt.SchemaVersion `json:"schema_version"`
	Answers       any                      `json:"answers"`
}

// POST /api/assessments
func (h *AssessmentHandler) Submit(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	var req submitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.assessments.SubmitRaw(c.Request.Context(), assessment.SubmitRawInput{
		UserID:        rd.UserID,
		DisplayName:   rd.DisplayName,
		SchemaVersion: req.SchemaVersion,
		Answers:       req.Answers,
	})
	if err != nil {
		response.RespondAPIError(c, err, "submit_assessment_failed")
		return
	}
	response.RespondCreated(c, out)
}

// GET /api/assessments/latest
func (h *AssessmentHandler) Latest(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	view, err := h.assessments.Latest(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err, "load_assessment_failed")
		return
	}
	response.RespondOK(c, view)
}

// GET /api/assessments?limit=
func (h *AssessmentHandler) History(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	items, err := h.assessments.History(c.Request.Context(), rd.UserID, queryLimit(c))
	if err != nil {
		response.RespondAPIError(c, err, "list_assessments_failed")
		return
	}
	response.RespondOK(c, gin.H{"assessments": items})
}

// GET /api/recommendations
func (h *AssessmentHandler) Recommendations(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	bundle, err := h.assessments.Recommendations(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err, "load_recommendations_failed")
		return
	}
	response.RespondOK(c, bundle)
}
