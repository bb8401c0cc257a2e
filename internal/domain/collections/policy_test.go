package collections

import (
	"errors"
	"testing"
	"time"

	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/users"
	"inkwell-app/internal/domain/works"
)

func TestRedactOwner(t *testing.T) {
	now := time.Now()
	owner := users.User{ID: "owner"}

	visible := Collection{ID: "c1", UserID: "owner", User: &owner, Title: "Open"}
	got := RedactOwner(visible, 2)
	if got.UserID == nil || *got.UserID != "owner" {
		t.Error("visible owner was stripped")
	}
	if got.WorkCount != 2 {
		t.Errorf("WorkCount = %d, want 2", got.WorkCount)
	}

	hidden := Collection{ID: "c2", UserID: "owner", User: &owner, OwnerHiddenDate: &now}
	got = RedactOwner(hidden, 0)
	if got.UserID != nil || got.User != nil {
		t.Error("hidden owner leaked")
	}
}

func TestCanAddWork(t *testing.T) {
	now := time.Now()
	teased := works.Work{TeaserDate: &now}
	hidden := works.Work{}

	myPen := pennames.PenName{ID: "pn", UserID: "me"}
	otherPen := pennames.PenName{ID: "pn2", UserID: "someone-else"}
	me := access.Viewer{UserID: "me"}

	tests := []struct {
		name     string
		col      Collection
		w        works.Work
		submitAs pennames.PenName
		want     error
	}{
		{
			name:     "submitting under someone else's pen name",
			col:      Collection{UserID: "me"},
			w:        teased,
			submitAs: otherPen,
			want:     access.ErrForbidden,
		},
		{
			name:     "owner adds own hidden draft",
			col:      Collection{UserID: "me"},
			w:        hidden,
			submitAs: myPen,
			want:     nil,
		},
		{
			name:     "public collection accepts a teased work",
			col:      Collection{UserID: "curator", PublicSubmissionsAllowed: true},
			w:        teased,
			submitAs: myPen,
			want:     nil,
		},
		{
			name:     "closed collection rejects outsiders",
			col:      Collection{UserID: "curator"},
			w:        teased,
			submitAs: myPen,
			want:     access.ErrForbidden,
		},
		{
			name:     "hidden work never enters a foreign collection",
			col:      Collection{UserID: "curator", PublicSubmissionsAllowed: true},
			w:        hidden,
			submitAs: myPen,
			want:     access.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAddWork(tt.col, tt.w, tt.submitAs, me)
			if !errors.Is(err, tt.want) {
				t.Errorf("CanAddWork() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCanRemoveWork(t *testing.T) {
	col := Collection{UserID: "curator"}
	addedBy := pennames.PenName{UserID: "submitter"}

	if err := CanRemoveWork(col, addedBy, access.Viewer{UserID: "curator"}); err != nil {
		t.Errorf("curator: err = %v, want nil", err)
	}
	if err := CanRemoveWork(col, addedBy, access.Viewer{UserID: "submitter"}); err != nil {
		t.Errorf("submitter: err = %v, want nil", err)
	}
	err := CanRemoveWork(col, addedBy, access.Viewer{UserID: "bystander"})
	if !errors.Is(err, access.ErrForbidden) {
		t.Errorf("bystander: err = %v, want ErrForbidden", err)
	}
}
