package contests

import (
	"time"

	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/works"
)

// CheckSubmissionWindow verifies that the contest accepts submissions
// at the given instant. An absent start date means the window never
// opens; an absent end date means it never closes.
func CheckSubmissionWindow(ct Contest, now time.Time) error {
	if ct.SubmissionStartDate == nil || now.Before(*ct.SubmissionStartDate) {
		return access.ErrWindowNotOpen
	}
	if ct.SubmissionEndDate != nil && now.After(*ct.SubmissionEndDate) {
		return access.ErrWindowClosed
	}
	return nil
}

// CanSubmit authorizes entering a work into a contest: the window must
// be open and the work's pen name must belong to the viewer.
func CanSubmit(ct Contest, w works.Work, viewer access.Viewer, now time.Time) error {
	if err := CheckSubmissionWindow(ct, now); err != nil {
		return err
	}
	if w.PenName == nil || !viewer.Owns(w.PenName.UserID) {
		return access.ErrForbidden
	}
	return nil
}

// CanWithdraw authorizes pulling a submission back out. The contest
// creator and the work's author may both do this, at any time; the
// window only gates the way in.
func CanWithdraw(ct Contest, workOwnerUserID string, viewer access.Viewer) error {
	if viewer.Owns(ct.CreatorUserID) || viewer.Owns(workOwnerUserID) {
		return nil
	}
	return access.ErrForbidden
}

// CanPublicize authorizes the bulk promotion of all submitted works.
// Only the creator may run it. Whether it may run while the submission
// window is still open is a caller-level policy choice, so the flag is
// passed in rather than decided here.
func CanPublicize(ct Contest, viewer access.Viewer, now time.Time, requireClosedWindow bool) error {
	if !viewer.Owns(ct.CreatorUserID) {
		return access.ErrForbidden
	}
	if requireClosedWindow && ct.SubmissionStartDate != nil &&
		(ct.SubmissionEndDate == nil || now.Before(*ct.SubmissionEndDate)) {
		return access.ErrConflict
	}
	return nil
}
