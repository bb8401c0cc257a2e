package pennames

import (
	"testing"
	"time"

	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/users"
)

func TestRedactOwnerAlwaysSeesIdentity(t *testing.T) {
	p := PenName{ID: "pn-1", UserID: "author", Name: "Quill"}
	owner := users.User{ID: "author", Name: "Ada"}

	got := Redact(p, &owner, 3, access.Viewer{UserID: "author"})
	if got.UserID == nil || *got.UserID != "author" {
		t.Fatal("owner projection lost the user id")
	}
	if got.User == nil || got.User.ID != "author" {
		t.Error("owner projection lost the user record")
	}
	if got.WorkCount != 3 {
		t.Errorf("WorkCount = %d, want 3", got.WorkCount)
	}
}

func TestRedactAnonymousPenName(t *testing.T) {
	p := PenName{ID: "pn-1", UserID: "author", Name: "Quill"}
	owner := users.User{ID: "author"}

	got := Redact(p, &owner, 1, access.Viewer{UserID: "someone-else"})
	if got.UserID != nil || got.User != nil {
		t.Error("anonymous pen name leaked its owner")
	}
	if got.Name != "Quill" {
		t.Errorf("Name = %q, want Quill", got.Name)
	}
}

func TestRedactRevealedPenName(t *testing.T) {
	reveal := time.Now()
	p := PenName{ID: "pn-1", UserID: "author", Name: "Quill", RevealDate: &reveal}
	owner := users.User{ID: "author"}

	got := Redact(p, &owner, 0, access.Viewer{UserID: "someone-else"})
	if got.UserID == nil || *got.UserID != "author" {
		t.Error("revealed pen name hid its owner")
	}
}

func TestRedactUnauthenticatedViewer(t *testing.T) {
	p := PenName{ID: "pn-1", UserID: "author", Name: "Quill"}

	got := Redact(p, nil, 0, access.Viewer{})
	if got.UserID != nil || got.User != nil {
		t.Error("anonymous pen name leaked its owner to an unauthenticated viewer")
	}
}
