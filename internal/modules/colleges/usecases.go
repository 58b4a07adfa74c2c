// Package colleges searches the college directory joined with rankings.
package colleges

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const (
	SearchCourse   = "course"
	SearchLocation = "location"

	SortRank      = "rank"
	SortPlacement = "placement"
	SortOverall   = "overall"

	// unrankedPosition orders colleges without an all-India rank last.
	unrankedPosition = 999

	filteredLimit   = 5
	unfilteredLimit = 10
)

var (
	courseFacets = []string{"B.Tech", "MBA", "B.Com", "BBA", "M.Tech", "PhD", "B.A.", "B.Sc.", "PGDM"}
	stateFacets  = []string{"Maharashtra", "Delhi", "Tamil Nadu", "Karnataka", "West Bengal", "Gujarat", "Rajasthan", "Uttar Pradesh", "Telangana"}
)

type Query struct {
	SearchType     string
	Q              string
	Course         string
	State          string
	GovernmentOnly bool
	Sort           string
}

type Result struct {
	Colleges []types.CollegeWithRanking `json:"colleges"`
	Matched  int                        `json:"matched"`
	Filtered bool                       `json:"filtered"`
}

type Facets struct {
	Courses []string `json:"courses"`
	States  []string `json:"states"`
}

type UsecasesDeps struct {
	Log      *logger.Logger
	Colleges repos.CollegeRepo
	Rankings repos.CollegeRankingRepo
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("service", "CollegeUsecases")
	return Usecases{deps: deps}
}

func (u Usecases) Facets() Facets {
	return Facets{
		Courses: append([]string(nil), courseFacets...),
		States:  append([]string(nil), stateFacets...),
	}
}

func (q *Query) normalize() error {
	q.SearchType = strings.ToLower(strings.TrimSpace(q.SearchType))
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	q.Q = strings.TrimSpace(q.Q)
	q.Course = strings.TrimSpace(q.Course)
	q.State = strings.TrimSpace(q.State)
	switch q.SearchType {
	case "":
		q.SearchType = SearchCourse
	case SearchCourse, SearchLocation:
	default:
		return fmt.Errorf("unknown search_type %q", q.SearchType)
	}
	switch q.Sort {
	case "":
		q.Sort = SortRank
	case SortRank, SortPlacement, SortOverall:
	default:
		return fmt.Errorf("unknown sort %q", q.Sort)
	}
	return nil
}

// Search loads the directory, applies the query and returns at most five
// colleges when any search term is set, otherwise the top ten.
func (u Usecases) Search(ctx context.Context, q Query) (*Result, error) {
	if err := q.normalize(); err != nil {
		return nil, apierr.BadRequest("invalid_college_query", err)
	}
	dbc := dbctx.Context{Ctx: ctx}
	colleges, err := u.deps.Colleges.List(dbc, 0)
	if err != nil {
		return nil, apierr.Internal("list_colleges_failed", err)
	}
	rankings, err := u.deps.Rankings.List(dbc)
	if err != nil {
		return nil, apierr.Internal("list_rankings_failed", err)
	}

	joined := join(colleges, rankings)
	matched := filter(joined, q)
	sortColleges(matched, q.Sort)

	filtered := q.Q != "" || q.Course != "" || q.State != ""
	limit := unfilteredLimit
	if filtered {
		limit = filteredLimit
	}
	total := len(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return &Result{Colleges: matched, Matched: total, Filtered: filtered}, nil
}

// join keeps college order and attaches the first ranking per college.
func join(colleges []*types.College, rankings []*types.CollegeRanking) []types.CollegeWithRanking {
	byCollege := make(map[uuid.UUID]*types.CollegeRanking, len(rankings))
	for _, r := range rankings {
		if _, seen := byCollege[r.CollegeID]; !seen {
			byCollege[r.CollegeID] = r
		}
	}
	out := make([]types.CollegeWithRanking, 0, len(colleges))
	for _, c := range colleges {
		out = append(out, types.CollegeWithRanking{College: *c, Ranking: byCollege[c.ID]})
	}
	return out
}

func filter(in []types.CollegeWithRanking, q Query) []types.CollegeWithRanking {
	needle := strings.ToLower(q.Q)
	keep := func(c types.CollegeWithRanking) bool {
		switch {
		case q.SearchType == SearchCourse && q.Course != "":
			if !offers(c.CoursesOffered, q.Course) {
				return false
			}
		case q.SearchType == SearchLocation:
			if q.State != "" && c.LocationState != q.State {
				return false
			}
			if needle != "" &&
				!strings.Contains(strings.ToLower(c.LocationCity), needle) &&
				!strings.Contains(strings.ToLower(c.LocationState), needle) {
				return false
			}
		case needle != "":
			if !strings.Contains(strings.ToLower(c.Name), needle) && !anyContains(c.CoursesOffered, needle) {
				return false
			}
		}
		return !q.GovernmentOnly || c.IsGovernment
	}
	out := make([]types.CollegeWithRanking, 0, len(in))
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func offers(courses []string, course string) bool {
	for _, c := range courses {
		if c == course {
			return true
		}
	}
	return false
}

func anyContains(courses []string, lowerNeedle string) bool {
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c), lowerNeedle) {
			return true
		}
	}
	return false
}

func rankOf(c types.CollegeWithRanking) int {
	if c.Ranking == nil || c.Ranking.AllIndiaRank == 0 {
		return unrankedPosition
	}
	return c.Ranking.AllIndiaRank
}

func placementOf(c types.CollegeWithRanking) float64 {
	if c.Ranking == nil {
		return 0
	}
	return c.Ranking.PlacementPerformance
}

func overallOf(c types.CollegeWithRanking) float64 {
	if c.Ranking == nil {
		return 0
	}
	return c.Ranking.OverallIndexScore
}

// sortColleges is stable so ties keep the rating order of the directory.
func sortColleges(cs []types.CollegeWithRanking, by string) {
	sort.SliceStable(cs, func(i, j int) bool {
		switch by {
		case SortPlacement:
			return placementOf(cs[i]) > placementOf(cs[j])
		case SortOverall:
			return overallOf(cs[i]) > overallOf(cs[j])
		default:
			return rankOf(cs[i]) < rankOf(cs[j])
		}
	})
}
