package works

import (
	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/pennames"
)

// Visibility is the outcome of filtering a work for a viewer.
type Visibility int

const (
	Invisible Visibility = iota
	Redacted
	Full
)

// ApplyVisibility decides what, if anything, of a work the viewer may
// see. Authors see their own works in full in every state. For everyone
// else a hidden work is invisible, a teased work keeps its title but
// loses content and summary, and a published work is returned in full.
// Anomalous rows are redacted like teased ones.
//
// Every work row must pass through here before it leaves the core;
// there is no trusted internal bypass.
func ApplyVisibility(w Work, viewer access.Viewer) (Work, Visibility) {
	if w.PenName != nil && viewer.Owns(w.PenName.UserID) {
		return w, Full
	}

	w.PenName = concealAuthor(w.PenName)

	switch w.State() {
	case StateHidden:
		return Work{}, Invisible
	case StatePublished:
		return w, Full
	default: // teased or anomalous
		w.Content = nil
		w.Summary = nil
		return w, Redacted
	}
}

// concealAuthor strips the owning user from an unrevealed pen name.
// The pen name rides along on every work projection, so an anonymous
// author has to vanish here as well, not just on pen name reads.
func concealAuthor(p *pennames.PenName) *pennames.PenName {
	if p == nil || p.RevealDate != nil {
		return p
	}
	anon := *p
	anon.UserID = ""
	anon.User = nil
	return &anon
}
