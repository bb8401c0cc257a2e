package works

import "time"

// State is a work's publication lifecycle state, derived entirely from
// its two nullable timestamps.
type State string

const (
	StateHidden    State = "hidden"
	StateTeased    State = "teased"
	StatePublished State = "published"

	// StateAnomalous is a publication date without a teaser date. Rows
	// like this should not exist, but when they do they are reported as
	// their own state rather than passed off as published.
	StateAnomalous State = "anomalous"
)

func StateOf(teaserDate, publicationDate *time.Time) State {
	switch {
	case teaserDate == nil && publicationDate == nil:
		return StateHidden
	case teaserDate != nil && publicationDate == nil:
		return StateTeased
	case teaserDate != nil && publicationDate != nil:
		return StatePublished
	default:
		return StateAnomalous
	}
}

func (w Work) State() State {
	return StateOf(w.TeaserDate, w.PublicationDate)
}
