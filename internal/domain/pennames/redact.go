package pennames

import (
	"time"

	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/users"
)

// Profile is the only shape of a pen name that leaves the core. The
// owning user is carried as a nullable reference so an anonymous pen
// name keeps its display name and work count but discloses nothing
// about who writes under it.
type Profile struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	UserID       *string     `json:"user_id"`
	User         *users.User `json:"user"`
	RevealDate   *time.Time  `json:"reveal_date"`
	CreationDate time.Time   `json:"creation_date"`
	WorkCount    int64       `json:"work_count"`
}

// Redact builds the viewer-appropriate projection of a pen name.
// The owner always sees the attached identity. Everyone else sees it
// only while RevealDate is set.
func Redact(p PenName, owner *users.User, workCount int64, viewer access.Viewer) Profile {
	out := Profile{
		ID:           p.ID,
		Name:         p.Name,
		RevealDate:   p.RevealDate,
		CreationDate: p.CreationDate,
		WorkCount:    workCount,
	}
	if viewer.Owns(p.UserID) || p.RevealDate != nil {
		userID := p.UserID
		out.UserID = &userID
		out.User = owner
	}
	return out
}
