package model

import (
	"encoding/json"
	"fmt"
)

// Category classifies a document. The set is closed: values outside
// Categories() are rejected when decoding or parsing.
type Category string

const (
	CategoryOperational  Category = "Operacional"
	CategoryHealthSafety Category = "Saúde e Segurança"
	CategoryQuality      Category = "Qualidade"
	CategoryRegulatory   Category = "Regulatório"
	CategoryContracts    Category = "Contratos"
	CategoryFleet        Category = "Frota"
)

var categories = []Category{
	CategoryOperational,
	CategoryHealthSafety,
	CategoryQuality,
	CategoryRegulatory,
	CategoryContracts,
	CategoryFleet,
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryOperational, CategoryHealthSafety, CategoryQuality,
		CategoryRegulatory, CategoryContracts, CategoryFleet:
		return true
	default:
		return false
	}
}

// ParseCategory matches s exactly (case-sensitive) against the known set.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if !c.Valid() {
		return "", false
	}
	return c, true
}

func (c Category) String() string { return string(c) }

// UnmarshalJSON rejects unknown category values.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, ok := ParseCategory(s)
	if !ok {
		return fmt.Errorf("unknown category %q", s)
	}
	*c = parsed
	return nil
}
