package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User mirrors the identity issued by the hosted auth provider. The ID is the
// token subject; the row is created on first authenticated access.
type User struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string                      `gorm:"not null;index;column:email" json:"email"`
	Name             string                      `gorm:"not null;column:name" json:"name"`
	Age              *int                        `gorm:"column:age" json:"age,omitempty"`
	Gender           string                      `gorm:"column:gender" json:"gender,omitempty"`
	ClassLevel       *int                        `gorm:"column:class_level" json:"class_level,omitempty"`
	Phone            string                      `gorm:"column:phone" json:"phone,omitempty"`
	LocationState    string                      `gorm:"column:location_state" json:"location_state,omitempty"`
	LocationDistrict string                      `gorm:"column:location_district" json:"location_district,omitempty"`
	Interests        datatypes.JSONSlice[string] `gorm:"column:interests" json:"interests"`
	CreatedAt        time.Time                   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
