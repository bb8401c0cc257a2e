package pennames

import (
	"time"

	"inkwell-app/internal/domain/users"
)

type PenName struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// omitempty so a concealed row (UserID blanked before serializing)
	// discloses nothing instead of an empty string.
	UserID string      `gorm:"type:uuid;not null;index" json:"user_id,omitempty"`
	User   *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	Name string `gorm:"not null;uniqueIndex:idx_pen_names_name" json:"name"`

	// RevealDate set means the owning user may be shown to other users.
	// Clearing it re-hides the identity; both directions are allowed.
	RevealDate *time.Time `json:"reveal_date"`

	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}
