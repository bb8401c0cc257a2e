package access

import "errors"

// Tagged failures returned by the policy core. Only the HTTP layer maps
// them to status codes. ErrNotFound covers both "row absent" and "row
// invisible to this viewer" so callers cannot probe for existence.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrWindowNotOpen = errors.New("submissions are not open yet")
	ErrWindowClosed  = errors.New("submissions are closed")
)
