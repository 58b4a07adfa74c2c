package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const TypeCareerSurvey = "career_survey"

// Assessment is one submitted questionnaire. Answers holds the raw answers of
// the source questionnaire; Record holds the normalized canonical record.
type Assessment struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	AssessmentType    string         `gorm:"not null;column:assessment_type;index" json:"assessment_type"`
	SchemaVersion     string         `gorm:"not null;column:schema_version" json:"schema_version"`
	Questions         datatypes.JSON `gorm:"column:questions" json:"questions"`
	Answers           datatypes.JSON `gorm:"column:answers" json:"answers"`
	Record            datatypes.JSON `gorm:"column:record" json:"record"`
	Scores            datatypes.JSON `gorm:"column:scores" json:"scores"`
	PersonalityTraits datatypes.JSON `gorm:"column:personality_traits" json:"personality_traits"`
	CompletedAt       time.Time      `gorm:"not null;column:completed_at" json:"completed_at"`
	CreatedAt         time.Time      `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (Assessment) TableName() string { return "assessments" }

// StudentForm is the legacy single-row-per-user profile mirror.
type StudentForm struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	Class          string    `gorm:"not null;column:class" json:"class"`
	Interests      string    `gorm:"not null;column:interests" json:"interests"`
	WeakSubjects   string    `gorm:"column:weak_subjects" json:"weak_subjects"`
	Marks          string    `gorm:"not null;column:marks" json:"marks"`
	CareerInterest string    `gorm:"not null;column:career_interest" json:"career_interest"`
	Stream         string    `gorm:"column:stream" json:"stream"`
	ExamPreference string    `gorm:"not null;column:exam_preference" json:"exam_preference"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (StudentForm) TableName() string { return "student_form" }
