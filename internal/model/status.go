package model

import "strings"

// Status is the derived lifecycle classification of a document. It is
// computed on demand and never persisted.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusExpiring Status = "A vencer"
	StatusExpired  Status = "Vencido"
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusExpiring, StatusExpired}
}

// Key is the short filter key for the status.
func (s Status) Key() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusExpiring:
		return "expiring"
	case StatusExpired:
		return "expired"
	default:
		return ""
	}
}

func (s Status) String() string { return string(s) }

// ParseStatus accepts either the wire value ("A vencer") or the filter key
// ("expiring"). Keys are matched case-insensitively.
func ParseStatus(v string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "active", strings.ToLower(string(StatusActive)):
		return StatusActive, true
	case "expiring", strings.ToLower(string(StatusExpiring)):
		return StatusExpiring, true
	case "expired", strings.ToLower(string(StatusExpired)):
		return StatusExpired, true
	default:
		return "", false
	}
}
