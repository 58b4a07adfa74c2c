package domain

import (
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/domain/catalog"
	"github.com/yungbote/careerpath-backend/internal/domain/user"
)

type User = user.User

type Assessment = assessment.Assessment
type StudentForm = assessment.StudentForm
type AnswerRecord = assessment.AnswerRecord
type RawAnswers = assessment.RawAnswers
type SchemaVersion = assessment.SchemaVersion
type QuestionSet = assessment.QuestionSet

type Degree = catalog.Degree
type Specialization = catalog.Specialization
type CareerRoadmap = catalog.CareerRoadmap
type UserRoadmap = catalog.UserRoadmap
type College = catalog.College
type CollegeRanking = catalog.CollegeRanking
type CollegeWithRanking = catalog.CollegeWithRanking

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&User{},
		&Assessment{},
		&StudentForm{},
		&Degree{},
		&Specialization{},
		&CareerRoadmap{},
		&UserRoadmap{},
		&College{},
		&CollegeRanking{},
	}
}
