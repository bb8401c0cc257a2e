package contests

import (
	"time"

	"inkwell-app/internal/domain/users"
	"inkwell-app/internal/domain/works"
)

type Contest struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CreatorUserID string      `gorm:"type:uuid;not null;index" json:"creator_user_id"`
	Creator       *users.User `gorm:"foreignKey:CreatorUserID;constraint:OnDelete:CASCADE;" json:"creator,omitempty"`

	Name        string `gorm:"not null;uniqueIndex:idx_contests_name" json:"name"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Rules       string `json:"rules"`

	PromptRevealDate *time.Time `json:"prompt_reveal_date"`

	// A nil start date means the contest never opens; a nil end date
	// means it never closes.
	SubmissionStartDate *time.Time `json:"submission_start_date"`
	SubmissionEndDate   *time.Time `json:"submission_end_date"`

	CreationDate   time.Time `gorm:"autoCreateTime" json:"creation_date"`
	LastEditedDate time.Time `json:"last_edited_date"`
}

// ContestSubmission keys on (contest, work) so resubmitting the same
// work is an idempotent no-op at the database level.
type ContestSubmission struct {
	ContestID string      `gorm:"type:uuid;primaryKey" json:"contest_id"`
	WorkID    string      `gorm:"type:uuid;primaryKey" json:"work_id"`
	Work      *works.Work `gorm:"constraint:OnDelete:CASCADE;" json:"work,omitempty"`

	SubmissionDate time.Time `gorm:"autoCreateTime" json:"submission_date"`
}
