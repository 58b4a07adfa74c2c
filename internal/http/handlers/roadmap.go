package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/modules/roadmap"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type RoadmapHandler struct {
	log      *logger.Logger
	roadmaps roadmap.Usecases
}

func NewRoadmapHandler(log *logger.Logger, roadmaps roadmap.Usecases) *RoadmapHandler {
	return &RoadmapHandler{log: log.With("handler", "RoadmapHandler"), roadmaps: roadmaps}
}

// parseID maps anything unparsable to uuid.Nil so the usecase reports it as
// a missing selection.
func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GET /api/degrees
func (h *RoadmapHandler) ListDegrees(c *gin.Context) {
	degrees, err := h.roadmaps.ListDegrees(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err, "list_degrees_failed")
		return
	}
	response.RespondOK(c, gin.H{"degrees": degrees})
}

// GET /api/degrees/:id/specializations
func (h *RoadmapHandler) ListSpecializations(c *gin.Context) {
	degreeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_degree_id", err)
		return
	}
	specs, err := h.roadmaps.ListSpecializations(c.Request.Context(), degreeID)
	if err != nil {
		response.RespondAPIError(c, err, "list_specializations_failed")
		return
	}
	response.RespondOK(c, gin.H{"specializations": specs})
}

// GET /api/roadmap?degree=&specialization=
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	view, err := h.roadmaps.GetRoadmap(c.Request.Context(), parseID(c.Query("degree")), parseID(c.Query("specialization")))
	if err != nil {
		response.RespondAPIError(c, err, "load_roadmap_failed")
		return
	}
	response.RespondOK(c, view)
}

type saveSelectionRequest struct {
	DegreeID         string `json:"degree_id"`
	SpecializationID string `json:"specialization_id"`
}

// POST /api/user-roadmaps
func (h *RoadmapHandler) SaveSelection(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	var req saveSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	sel, err := h.roadmaps.SaveSelection(c.Request.Context(), rd.UserID, parseID(req.DegreeID), parseID(req.SpecializationID))
	if err != nil {
		response.RespondAPIError(c, err, "save_selection_failed")
		return
	}
	response.RespondOK(c, sel)
}

// GET /api/user-roadmaps?limit=
func (h *RoadmapHandler) ListSelections(c *gin.Context) {
	rd, ok := requestUser(c)
	if !ok {
		return
	}
	rows, err := h.roadmaps.ListSelections(c.Request.Context(), rd.UserID, queryLimit(c))
	if err != nil {
		response.RespondAPIError(c, err, "list_selections_failed")
		return
	}
	response.RespondOK(c, gin.H{"selections": rows})
}
