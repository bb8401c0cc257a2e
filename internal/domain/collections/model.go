package collections

import (
	"time"

	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/users"
	"inkwell-app/internal/domain/works"
)

type Collection struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID string      `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	// Anyone may contribute visible works while this is set.
	PublicSubmissionsAllowed bool `gorm:"not null;default:false" json:"public_submissions_allowed"`

	// OwnerHiddenDate set: the owner is suppressed in every projection.
	OwnerHiddenDate *time.Time `json:"owner_hidden_date"`

	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}

// CollectionWork is a membership row. The composite primary key makes
// duplicate adds collapse into the existing row, which is what keeps
// the add operation idempotent under concurrent requests.
type CollectionWork struct {
	CollectionID string      `gorm:"type:uuid;primaryKey" json:"collection_id"`
	WorkID       string      `gorm:"type:uuid;primaryKey" json:"work_id"`
	Work         *works.Work `gorm:"constraint:OnDelete:CASCADE;" json:"work,omitempty"`

	AddedByPenNameID string            `gorm:"type:uuid;not null" json:"added_by_pen_name_id"`
	AddedByPenName   *pennames.PenName `gorm:"foreignKey:AddedByPenNameID" json:"added_by_pen_name,omitempty"`

	AddedDate time.Time `gorm:"autoCreateTime" json:"added_date"`
}
