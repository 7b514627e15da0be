package service

import (
	"strings"
	"time"

	"docflow/internal/lifecycle"
	"docflow/internal/model"
)

// DocumentView is a document together with the values derived from it at
// read time. It is never persisted.
type DocumentView struct {
	model.Document
	Status         model.Status `json:"status"`
	LocationName   string       `json:"locationName"`
	DaysRemaining  *int         `json:"daysRemaining,omitempty"`
	RemainingLabel string       `json:"remainingLabel,omitempty"`
	CompactLabel   string       `json:"compactLabel,omitempty"`
}

// ReportFilter narrows a report. Zero-valued fields match every document.
type ReportFilter struct {
	Category   model.Category
	LocationID string
	Status     model.Status
	// Search is matched case-insensitively against title, code and description.
	Search string
	// IssuedFrom and IssuedTo bound issueDate, both inclusive.
	IssuedFrom model.Date
	IssuedTo   model.Date
}

// Stats summarizes the collection by derived status and category.
type Stats struct {
	Total      int                    `json:"total"`
	Active     int                    `json:"active"`
	Expiring   int                    `json:"expiring"`
	Expired    int                    `json:"expired"`
	ByCategory map[model.Category]int `json:"byCategory"`
}

// View derives status, location name and remaining-time labels for doc.
func (s *Store) View(doc model.Document, now time.Time) DocumentView {
	v := DocumentView{
		Document:     doc,
		Status:       lifecycle.DeriveDocument(doc, now, s.windowDays),
		LocationName: s.LocationName(doc.LocationID),
	}
	if exp := doc.Expiry(); exp != nil {
		today := lifecycle.Today(now)
		days := lifecycle.DaysRemaining(*exp, today)
		v.DaysRemaining = &days
		v.RemainingLabel = lifecycle.RemainingLabel(*exp, today)
		v.CompactLabel = lifecycle.CompactRemainingLabel(*exp, today)
	}
	return v
}

// Report returns the documents matching f, in collection order.
func (s *Store) Report(f ReportFilter, now time.Time) []DocumentView {
	docs := s.Documents()
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]DocumentView, 0, len(docs))
	for _, doc := range docs {
		if f.Category != "" && doc.Category != f.Category {
			continue
		}
		if f.LocationID != "" && doc.LocationID != f.LocationID {
			continue
		}
		if !f.IssuedFrom.IsZero() && doc.IssueDate.Before(f.IssuedFrom) {
			continue
		}
		if !f.IssuedTo.IsZero() && doc.IssueDate.After(f.IssuedTo) {
			continue
		}
		if search != "" && !matchesSearch(doc, search) {
			continue
		}
		v := s.View(doc, now)
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSearch(doc model.Document, needle string) bool {
	for _, field := range []string{doc.Title, doc.Code, doc.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Stats counts documents by derived status and by category.
func (s *Store) Stats(now time.Time) Stats {
	docs := s.Documents()
	st := Stats{Total: len(docs), ByCategory: make(map[model.Category]int)}
	for _, doc := range docs {
		switch lifecycle.DeriveDocument(doc, now, s.windowDays) {
		case model.StatusExpired:
			st.Expired++
		case model.StatusExpiring:
			st.Expiring++
		case model.StatusActive:
			st.Active++
		}
		st.ByCategory[doc.Category]++
	}
	return st
}
