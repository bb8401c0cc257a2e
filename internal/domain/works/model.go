package works

import (
	"time"

	"inkwell-app/internal/domain/pennames"
)

type Work struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// The owning pen name is fixed at creation time.
	PenNameID string            `gorm:"type:uuid;not null;index" json:"pen_name_id"`
	PenName   *pennames.PenName `gorm:"constraint:OnDelete:CASCADE;" json:"pen_name,omitempty"`

	Title   *string `json:"title"`
	Content *string `json:"content"`
	Summary *string `json:"summary"`

	// TeaserDate set: the title is visible to non-owners.
	// PublicationDate set: content and summary are visible too.
	// PublicationDate without TeaserDate is an anomalous row; the
	// classifier surfaces it instead of normalizing it away.
	TeaserDate      *time.Time `json:"teaser_date"`
	PublicationDate *time.Time `json:"publication_date"`

	CreationDate   time.Time `gorm:"autoCreateTime" json:"creation_date"`
	LastEditedDate time.Time `json:"last_edited_date"`
}
