package works

import (
	"testing"
	"time"
)

func TestStateOf(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		teaser      *time.Time
		publication *time.Time
		want        State
	}{
		{"no dates", nil, nil, StateHidden},
		{"teaser only", &now, nil, StateTeased},
		{"both dates", &now, &now, StatePublished},
		{"publication only", nil, &now, StateAnomalous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(tt.teaser, tt.publication); got != tt.want {
				t.Errorf("StateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkState(t *testing.T) {
	now := time.Now()
	w := Work{TeaserDate: &now}
	if got := w.State(); got != StateTeased {
		t.Errorf("State() = %v, want %v", got, StateTeased)
	}
}
