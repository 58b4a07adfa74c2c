package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type College struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	Name             string                      `gorm:"not null;uniqueIndex;column:name" json:"name" yaml:"name"`
	LocationCity     string                      `gorm:"column:location_city" json:"location_city" yaml:"location_city"`
	LocationState    string                      `gorm:"column:location_state;index" json:"location_state" yaml:"location_state"`
	LocationDistrict string                      `gorm:"column:location_district" json:"location_district" yaml:"location_district"`
	Address          string                      `gorm:"column:address" json:"address" yaml:"address"`
	ImageURL         string                      `gorm:"column:image_url" json:"image_url" yaml:"image_url"`
	IsGovernment     bool                        `gorm:"column:is_government" json:"is_government" yaml:"is_government"`
	Rating           float64                     `gorm:"column:rating" json:"rating" yaml:"rating"`
	CoursesOffered   datatypes.JSONSlice[string] `gorm:"column:courses_offered" json:"courses_offered" yaml:"courses_offered"`
	Facilities       datatypes.JSONSlice[string] `gorm:"column:facilities" json:"facilities" yaml:"facilities"`
	Website          string                      `gorm:"column:website" json:"website" yaml:"website"`
	ContactEmail     string                      `gorm:"column:contact_email" json:"contact_email" yaml:"contact_email"`
	ContactPhone     string                      `gorm:"column:contact_phone" json:"contact_phone" yaml:"contact_phone"`
	CreatedAt        time.Time                   `gorm:"not null;autoCreateTime" json:"created_at" yaml:"-"`
}

func (College) TableName() string { return "colleges" }

// CollegeRanking is optional per college (1:0..1).
type CollegeRanking struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	CollegeID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:college_id" json:"college_id" yaml:"-"`
	AllIndiaRank         int       `gorm:"column:all_india_rank" json:"all_india_rank" yaml:"all_india_rank"`
	StateRank            int       `gorm:"column:state_rank" json:"state_rank" yaml:"state_rank"`
	PlacementPerformance float64   `gorm:"column:placement_performance" json:"placement_performance" yaml:"placement_performance"`
	ResearchOutput       float64   `gorm:"column:research_output" json:"research_output" yaml:"research_output"`
	IndustryIntegration  float64   `gorm:"column:industry_integration" json:"industry_integration" yaml:"industry_integration"`
	OverallIndexScore    float64   `gorm:"column:overall_index_score" json:"overall_index_score" yaml:"overall_index_score"`
	AveragePackageLPA    float64   `gorm:"column:average_package_lpa" json:"average_package_lpa" yaml:"average_package_lpa"`
	HighestPackageLPA    float64   `gorm:"column:highest_package_lpa" json:"highest_package_lpa" yaml:"highest_package_lpa"`
	PlacementPercentage  float64   `gorm:"column:placement_percentage" json:"placement_percentage" yaml:"placement_percentage"`
	CreatedAt            time.Time `gorm:"not null;autoCreateTime" json:"created_at" yaml:"-"`
}

func (CollegeRanking) TableName() string { return "college_rankings" }

type CollegeWithRanking struct {
	College
	Ranking *CollegeRanking `json:"ranking,omitempty"`
}
