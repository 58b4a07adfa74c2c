package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Degree struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	Name          string    `gorm:"not null;column:name" json:"name" yaml:"name"`
	Code          string    `gorm:"not null;uniqueIndex;column:code" json:"code" yaml:"code"`
	Description   string    `gorm:"column:description" json:"description" yaml:"description"`
	DurationYears int       `gorm:"column:duration_years" json:"duration_years" yaml:"duration_years"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at" yaml:"-"`
}

func (Degree) TableName() string { return "degrees" }

type Specialization struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	DegreeID    uuid.UUID `gorm:"type:uuid;not null;index;column:degree_id" json:"degree_id" yaml:"-"`
	Name        string    `gorm:"not null;column:name" json:"name" yaml:"name"`
	Code        string    `gorm:"not null;uniqueIndex;column:code" json:"code" yaml:"code"`
	Description string    `gorm:"column:description" json:"description" yaml:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at" yaml:"-"`
}

func (Specialization) TableName() string { return "specializations" }

type SkillPhase struct {
	Phase  string   `json:"phase" yaml:"phase"`
	Skills []string `json:"skills" yaml:"skills"`
}

type EntryRole struct {
	Role        string `json:"role" yaml:"role"`
	Description string `json:"description" yaml:"description"`
}

type Certification struct {
	Name     string `json:"name" yaml:"name"`
	Priority string `json:"priority" yaml:"priority"`
}

type Project struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type HigherStudy struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type Company struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// CareerRoadmap is reference data; at most one row per specialization.
type CareerRoadmap struct {
	ID               uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	SpecializationID uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex;column:specialization_id" json:"specialization_id" yaml:"-"`
	Skills           datatypes.JSONSlice[SkillPhase]    `gorm:"column:skills" json:"skills" yaml:"skills"`
	EntryRoles       datatypes.JSONSlice[EntryRole]     `gorm:"column:entry_roles" json:"entry_roles" yaml:"entry_roles"`
	Certifications   datatypes.JSONSlice[Certification] `gorm:"column:certifications" json:"certifications" yaml:"certifications"`
	Projects         datatypes.JSONSlice[Project]       `gorm:"column:projects" json:"projects" yaml:"projects"`
	HigherStudies    datatypes.JSONSlice[HigherStudy]   `gorm:"column:higher_studies" json:"higher_studies" yaml:"higher_studies"`
	AvgSalaryMin     *int64                             `gorm:"column:avg_salary_min" json:"avg_salary_min" yaml:"avg_salary_min"`
	AvgSalaryMax     *int64                             `gorm:"column:avg_salary_max" json:"avg_salary_max" yaml:"avg_salary_max"`
	TopCompanies     datatypes.JSONSlice[Company]       `gorm:"column:top_companies" json:"top_companies" yaml:"top_companies"`
	CreatedAt        time.Time                          `gorm:"not null;autoCreateTime" json:"created_at" yaml:"-"`
	UpdatedAt        time.Time                          `gorm:"not null;autoUpdateTime" json:"updated_at" yaml:"-"`
}

func (CareerRoadmap) TableName() string { return "career_roadmaps" }

// UserRoadmap records a user's degree/specialization selection.
type UserRoadmap struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	DegreeID         uuid.UUID  `gorm:"type:uuid;not null;column:degree_id" json:"degree_id"`
	SpecializationID uuid.UUID  `gorm:"type:uuid;not null;column:specialization_id" json:"specialization_id"`
	RoadmapID        *uuid.UUID `gorm:"type:uuid;column:roadmap_id" json:"roadmap_id"`
	CreatedAt        time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (UserRoadmap) TableName() string { return "user_roadmaps" }
