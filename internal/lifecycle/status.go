// Package lifecycle derives a document's status from its expiry date.
// Everything here is a pure function of its inputs; callers re-derive on
// every read instead of caching the result on the document.
package lifecycle

import (
	"time"

	"docflow/internal/model"
)

// DefaultWarningWindowDays is the lookahead used to flag a document as expiring.
const DefaultWarningWindowDays = 30

// Today returns the calendar date of now, in now's location.
func Today(now time.Time) model.Date {
	return model.DateOf(now)
}

// Derive classifies a document by its expiry date relative to now.
//
// A nil expiry never expires. An expiry earlier than today is expired. An
// expiry between today and today+windowDays, both inclusive, is expiring, so
// a document that expires today is still expiring rather than expired.
func Derive(expiry *model.Date, now time.Time, windowDays int) model.Status {
	if expiry == nil || expiry.IsZero() {
		return model.StatusActive
	}
	if windowDays < 0 {
		windowDays = 0
	}

	today := Today(now)
	threshold := today.AddDays(windowDays)

	switch {
	case expiry.Before(today):
		return model.StatusExpired
	case !expiry.After(threshold):
		return model.StatusExpiring
	default:
		return model.StatusActive
	}
}

// DeriveDocument is Derive applied to a document.
func DeriveDocument(doc model.Document, now time.Time, windowDays int) model.Status {
	return Derive(doc.Expiry(), now, windowDays)
}
