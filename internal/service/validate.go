package service

import (
	"errors"
	"fmt"
	"strings"

	"docflow/internal/model"
)

// ErrValidation marks a record rejected before any mutation.
var ErrValidation = errors.New("validation failed")

// ValidationError names the offending field. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ValidateDocument checks the required fields of a document.
func ValidateDocument(doc model.Document) error {
	switch {
	case doc.ID == "":
		return invalid("id", "is required")
	case strings.TrimSpace(doc.Title) == "":
		return invalid("title", "is required")
	case !doc.Category.Valid():
		return invalid("category", fmt.Sprintf("unknown category %q", doc.Category))
	case doc.LocationID == "":
		return invalid("locationId", "is required")
	case doc.IssueDate.IsZero():
		return invalid("issueDate", "is required")
	}
	return nil
}

// ValidateLocation checks the required fields of a location.
func ValidateLocation(loc model.Location) error {
	switch {
	case loc.ID == "":
		return invalid("id", "is required")
	case strings.TrimSpace(loc.Name) == "":
		return invalid("name", "is required")
	}
	return nil
}

func normalizeDocument(doc model.Document) model.Document {
	doc.Title = strings.TrimSpace(doc.Title)
	doc.Responsible = strings.TrimSpace(doc.Responsible)
	if doc.Responsible == "" {
		doc.Responsible = model.DefaultResponsible
	}
	if doc.ExpiryDate != nil && doc.ExpiryDate.IsZero() {
		doc.ExpiryDate = nil
	}
	if doc.ExpiryDate != nil {
		exp := *doc.ExpiryDate
		doc.ExpiryDate = &exp
	}
	return doc
}

func normalizeLocation(loc model.Location) model.Location {
	loc.Name = strings.TrimSpace(loc.Name)
	loc.Address = strings.TrimSpace(loc.Address)
	return loc
}
