package works

import (
	"context"

	"inkwell-app/internal/domain/access"
)

// ForeignCollectionChecker reports whether a work currently sits in a
// collection that is not owned by the work's author.
type ForeignCollectionChecker interface {
	WorkInForeignCollection(ctx context.Context, workID, ownerUserID string) (bool, error)
}

// CheckUnteaser guards the transition that clears a work's teaser date.
// A work that another user's collection relies on being visible cannot
// be hidden out from under it.
func CheckUnteaser(ctx context.Context, checker ForeignCollectionChecker, workID, ownerUserID string) error {
	referenced, err := checker.WorkInForeignCollection(ctx, workID, ownerUserID)
	if err != nil {
		return err
	}
	if referenced {
		return access.ErrConflict
	}
	return nil
}
