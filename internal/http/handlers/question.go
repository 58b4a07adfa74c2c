package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/modules/intake"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler { return &QuestionHandler{} }

// GET /api/questions?schema=
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	version := assessment.SchemaVersion(c.Query("schema"))
	if version == "" {
		version = assessment.DefaultVersion
	}
	set, err := assessment.Lookup(version)
	if err != nil {
		response.RespondAPIError(c, intake.APIError(err), "load_questions_failed")
		return
	}
	response.RespondOK(c, gin.H{"question_set": set, "versions": assessment.Versions()})
}
