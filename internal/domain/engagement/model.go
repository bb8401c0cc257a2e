package engagement

import (
	"time"

	"inkwell-app/internal/domain/users"
	"inkwell-app/internal/domain/works"
)

// Like is a per-user marker on a work. The composite key makes liking
// twice a no-op.
type Like struct {
	UserID string      `gorm:"type:uuid;primaryKey" json:"user_id"`
	WorkID string      `gorm:"type:uuid;primaryKey" json:"work_id"`
	User   *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Work   *works.Work `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}

type Comment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string      `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	WorkID string      `gorm:"type:uuid;not null;index" json:"work_id"`
	Work   *works.Work `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Content string `gorm:"not null" json:"content"`

	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}
