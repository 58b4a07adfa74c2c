package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/modules/colleges"
)

type CollegeHandler struct {
	colleges colleges.Usecases
}

func NewCollegeHandler(uc colleges.Usecases) *CollegeHandler {
	return &CollegeHandler{colleges: uc}
}

// GET /api/colleges?search_type=&q=&course=&state=&government_only=&sort=
func (h *CollegeHandler) Search(c *gin.Context) {
	q := colleges.Query{
		SearchType: c.Query("search_type"),
		Q:          c.Query("q"),
		Course:     c.Query("course"),
		State:      c.Query("state"),
		Sort:       c.Query("sort"),
	}
	if raw := c.Query("government_only"); raw != "" {
		gov, err := strconv.ParseBool(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_college_query", err)
			return
		}
		q.GovernmentOnly = gov
	}
	res, err := h.colleges.Search(c.Request.Context(), q)
	if err != nil {
		response.RespondAPIError(c, err, "search_colleges_failed")
		return
	}
	response.RespondOK(c, res)
}

// GET /api/colleges/facets
func (h *CollegeHandler) Facets(c *gin.Context) {
	response.RespondOK(c, h.colleges.Facets())
}
