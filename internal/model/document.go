package model

// DefaultResponsible fills Document.Responsible when the caller leaves it empty.
const DefaultResponsible = "Admin"

// Document is a compliance document tied to a location.
// JSON field names match the persisted snapshot format.
type Document struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	LocationID   string   `json:"locationId"`
	IssueDate    Date     `json:"issueDate"`
	ExpiryDate   *Date    `json:"expiryDate,omitempty"`
	Responsible  string   `json:"responsible"`
	Code         string   `json:"code,omitempty"`
	Observations string   `json:"observations,omitempty"`
	FileName     string   `json:"fileName,omitempty"`
	// CreatedAt is unix milliseconds, set once at creation.
	CreatedAt int64 `json:"createdAt"`
}

// Expiry returns the expiry date, or nil when the document does not expire.
// An explicit zero date is treated the same as an absent one.
func (d Document) Expiry() *Date {
	if d.ExpiryDate == nil || d.ExpiryDate.IsZero() {
		return nil
	}
	return d.ExpiryDate
}
