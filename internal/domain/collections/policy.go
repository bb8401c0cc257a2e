package collections

import (
	"time"

	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/users"
	"inkwell-app/internal/domain/works"
)

// Projection is the collection shape that leaves the core. When the
// owner chose to be hidden, the owner reference is stripped for every
// viewer, the owner included.
type Projection struct {
	ID                       string      `json:"id"`
	UserID                   *string     `json:"user_id"`
	User                     *users.User `json:"user,omitempty"`
	Title                    string      `json:"title"`
	Description              string      `json:"description"`
	PublicSubmissionsAllowed bool        `json:"public_submissions_allowed"`
	OwnerHiddenDate          *time.Time  `json:"owner_hidden_date"`
	CreationDate             time.Time   `json:"creation_date"`
	WorkCount                int64       `json:"work_count"`
}

func RedactOwner(c Collection, workCount int64) Projection {
	out := Projection{
		ID:                       c.ID,
		Title:                    c.Title,
		Description:              c.Description,
		PublicSubmissionsAllowed: c.PublicSubmissionsAllowed,
		OwnerHiddenDate:          c.OwnerHiddenDate,
		CreationDate:             c.CreationDate,
		WorkCount:                workCount,
	}
	if c.OwnerHiddenDate == nil {
		userID := c.UserID
		out.UserID = &userID
		out.User = c.User
	}
	return out
}

// CanAddWork authorizes contributing a work to a collection. The
// submitting pen name must belong to the viewer. The collection owner
// may add any of their visible or hidden works; anyone else needs the
// collection to accept public submissions and the work to be at least
// teased. A hidden draft never enters someone else's collection.
func CanAddWork(c Collection, w works.Work, submitAs pennames.PenName, viewer access.Viewer) error {
	if !viewer.Owns(submitAs.UserID) {
		return access.ErrForbidden
	}
	if viewer.Owns(c.UserID) {
		return nil
	}
	if !c.PublicSubmissionsAllowed {
		return access.ErrForbidden
	}
	if w.State() == works.StateHidden {
		return access.ErrForbidden
	}
	return nil
}

// CanRemoveWork authorizes removing a membership row: the collection
// owner may curate freely, and the user behind the pen name that added
// the work may withdraw it.
func CanRemoveWork(c Collection, addedBy pennames.PenName, viewer access.Viewer) error {
	if viewer.Owns(c.UserID) || viewer.Owns(addedBy.UserID) {
		return nil
	}
	return access.ErrForbidden
}
