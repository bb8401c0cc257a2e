package contests

import (
	"errors"
	"testing"
	"time"

	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"
)

func TestCheckSubmissionWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  error
	}{
		{"no start date", nil, nil, access.ErrWindowNotOpen},
		{"before start", &future, nil, access.ErrWindowNotOpen},
		{"open without end", &past, nil, nil},
		{"open within window", &past, &future, nil},
		{"after end", &past, &past, access.ErrWindowClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := Contest{SubmissionStartDate: tt.start, SubmissionEndDate: tt.end}
			if err := CheckSubmissionWindow(ct, now); !errors.Is(err, tt.want) {
				t.Errorf("CheckSubmissionWindow() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCanSubmit(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	open := Contest{SubmissionStartDate: &past}

	mine := works.Work{PenName: &pennames.PenName{UserID: "me"}}
	theirs := works.Work{PenName: &pennames.PenName{UserID: "someone-else"}}
	me := access.Viewer{UserID: "me"}

	if err := CanSubmit(open, mine, me, now); err != nil {
		t.Errorf("own work in open window: err = %v, want nil", err)
	}
	if err := CanSubmit(open, theirs, me, now); !errors.Is(err, access.ErrForbidden) {
		t.Errorf("someone else's work: err = %v, want ErrForbidden", err)
	}

	closed := Contest{SubmissionStartDate: &past, SubmissionEndDate: &past}
	if err := CanSubmit(closed, mine, me, now); !errors.Is(err, access.ErrWindowClosed) {
		t.Errorf("closed window: err = %v, want ErrWindowClosed", err)
	}
}

func TestCanWithdraw(t *testing.T) {
	ct := Contest{CreatorUserID: "creator"}

	if err := CanWithdraw(ct, "author", access.Viewer{UserID: "creator"}); err != nil {
		t.Errorf("creator: err = %v, want nil", err)
	}
	if err := CanWithdraw(ct, "author", access.Viewer{UserID: "author"}); err != nil {
		t.Errorf("author: err = %v, want nil", err)
	}
	err := CanWithdraw(ct, "author", access.Viewer{UserID: "bystander"})
	if !errors.Is(err, access.ErrForbidden) {
		t.Errorf("bystander: err = %v, want ErrForbidden", err)
	}
}

func TestCanPublicize(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	creator := access.Viewer{UserID: "creator"}

	ct := Contest{CreatorUserID: "creator", SubmissionStartDate: &past, SubmissionEndDate: &future}

	err := CanPublicize(ct, access.Viewer{UserID: "someone-else"}, now, false)
	if !errors.Is(err, access.ErrForbidden) {
		t.Errorf("non-creator: err = %v, want ErrForbidden", err)
	}

	if err := CanPublicize(ct, creator, now, false); err != nil {
		t.Errorf("flag off, window open: err = %v, want nil", err)
	}

	if err := CanPublicize(ct, creator, now, true); !errors.Is(err, access.ErrConflict) {
		t.Errorf("flag on, window open: err = %v, want ErrConflict", err)
	}

	endless := Contest{CreatorUserID: "creator", SubmissionStartDate: &past}
	if err := CanPublicize(endless, creator, now, true); !errors.Is(err, access.ErrConflict) {
		t.Errorf("flag on, window never closes: err = %v, want ErrConflict", err)
	}

	closed := Contest{CreatorUserID: "creator", SubmissionStartDate: &past, SubmissionEndDate: &past}
	if err := CanPublicize(closed, creator, now, true); err != nil {
		t.Errorf("flag on, window closed: err = %v, want nil", err)
	}

	neverOpened := Contest{CreatorUserID: "creator"}
	if err := CanPublicize(neverOpened, creator, now, true); err != nil {
		t.Errorf("flag on, no window configured: err = %v, want nil", err)
	}
}
