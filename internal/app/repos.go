package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Repos struct {
	User           repos.UserRepo
	Assessment     repos.AssessmentRepo
	StudentForm    repos.StudentFormRepo
	Degree         repos.DegreeRepo
	Specialization repos.SpecializationRepo
	CareerRoadmap  repos.CareerRoadmapRepo
	UserRoadmap    repos.UserRoadmapRepo
	College        repos.CollegeRepo
	CollegeRanking repos.CollegeRankingRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	gw := gateway.New(db, log)
	return Repos{
		User:           repos.NewUserRepo(gw, log),
		Assessment:     repos.NewAssessmentRepo(gw, log),
		StudentForm:    repos.NewStudentFormRepo(gw, log),
		Degree:         repos.NewDegreeRepo(gw, log),
		Specialization: repos.NewSpecializationRepo(gw, log),
		CareerRoadmap:  repos.NewCareerRoadmapRepo(gw, log),
		UserRoadmap:    repos.NewUserRoadmapRepo(gw, log),
		College:        repos.NewCollegeRepo(gw, log),
		CollegeRanking: repos.NewCollegeRankingRepo(gw, log),
	}
}
