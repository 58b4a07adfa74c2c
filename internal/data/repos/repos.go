package repos

import (
	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos/assessment"
	"github.com/yungbote/careerpath-backend/internal/data/repos/catalog"
	"github.com/yungbote/careerpath-backend/internal/data/repos/user"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

type AssessmentRepo = assessment.AssessmentRepo
type StudentFormRepo = assessment.StudentFormRepo

type DegreeRepo = catalog.DegreeRepo
type SpecializationRepo = catalog.SpecializationRepo
type CareerRoadmapRepo = catalog.CareerRoadmapRepo
type UserRoadmapRepo = catalog.UserRoadmapRepo
type CollegeRepo = catalog.CollegeRepo
type CollegeRankingRepo = catalog.CollegeRankingRepo

func NewUserRepo(gw gateway.Gateway, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(gw, baseLog)
}

func NewAssessmentRepo(gw gateway.Gateway, baseLog *logger.Logger) AssessmentRepo {
	return assessment.NewAssessmentRepo(gw, baseLog)
}
func NewStudentFormRepo(gw gateway.Gateway, baseLog *logger.Logger) StudentFormRepo {
	return assessment.NewStudentFormRepo(gw, baseLog)
}

func NewDegreeRepo(gw gateway.Gateway, baseLog *logger.Logger) DegreeRepo {
	return catalog.NewDegreeRepo(gw, baseLog)
}
func NewSpecializationRepo(gw gateway.Gateway, baseLog *logger.Logger) SpecializationRepo {
	return catalog.NewSpecializationRepo(gw, baseLog)
}
func NewCareerRoadmapRepo(gw gateway.Gateway, baseLog *logger.Logger) CareerRoadmapRepo {
	return catalog.NewCareerRoadmapRepo(gw, baseLog)
}
func NewUserRoadmapRepo(gw gateway.Gateway, baseLog *logger.Logger) UserRoadmapRepo {
	return catalog.NewUserRoadmapRepo(gw, baseLog)
}
func NewCollegeRepo(gw gateway.Gateway, baseLog *logger.Logger) CollegeRepo {
	return catalog.NewCollegeRepo(gw, baseLog)
}
func NewCollegeRankingRepo(gw gateway.Gateway, baseLog *logger.Logger) CollegeRankingRepo {
	return catalog.NewCollegeRankingRepo(gw, baseLog)
}
