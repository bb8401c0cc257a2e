package access

// Viewer is the identity attached to a request by the session layer.
// An empty UserID means the caller is unauthenticated and can never
// pass an ownership check.
type Viewer struct {
	UserID string
	Role   string
}

func (v Viewer) Authenticated() bool {
	return v.UserID != ""
}

// Owns reports whether the viewer is the user identified by userID.
func (v Viewer) Owns(userID string) bool {
	return v.UserID != "" && v.UserID == userID
}
