package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		assert.True(t, ok, c)
		assert.Equal(t, c, got)
	}

	tests := []string{"", "operacional", "Saude e Seguranca", "Frota ", "Other"}
	for _, s := range tests {
		_, ok := ParseCategory(s)
		assert.False(t, ok, s)
	}
}

func TestCategory_UnmarshalJSON(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`"Saúde e Segurança"`), &c))
	assert.Equal(t, CategoryHealthSafety, c)

	err := json.Unmarshal([]byte(`"Financeiro"`), &c)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"expired", StatusExpired, true},
		{"Vencido", StatusExpired, true},
		{"EXPIRING", StatusExpiring, true},
		{"A vencer", StatusExpiring, true},
		{"active", StatusActive, true},
		{"Ativo", StatusActive, true},
		{"", "", false},
		{"archived", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDate(t *testing.T) {
	d := MustParseDate("2024-02-28")

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2023-12-31", MustParseDate("2024-01-01").AddDays(-1).String())

	assert.True(t, MustParseDate("2024-05-15").Before(MustParseDate("2024-06-01")))
	assert.True(t, MustParseDate("2025-01-01").After(MustParseDate("2024-12-31")))
	assert.True(t, d.Equal(MustParseDate("2024-02-28")))

	assert.Equal(t, -17, MustParseDate("2024-06-01").DaysUntil(MustParseDate("2024-05-15")))
	assert.Equal(t, 19, MustParseDate("2024-06-01").DaysUntil(MustParseDate("2024-06-20")))
	assert.Equal(t, 2913021, MustParseDate("2024-06-01").DaysUntil(MustParseDate("9999-12-31")))

	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestDateOf_UsesLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2024, 6, 2, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-02", DateOf(instant).String())
	assert.Equal(t, "2024-06-01", DateOf(instant.In(saoPaulo)).String())
}

func TestDocument_JSON(t *testing.T) {
	exp := MustParseDate("2024-12-01")
	doc := Document{
		ID:          "d1",
		Title:       "Alvará de Funcionamento",
		Category:    CategoryRegulatory,
		LocationID:  "l1",
		IssueDate:   MustParseDate("2024-01-10"),
		ExpiryDate:  &exp,
		Responsible: DefaultResponsible,
		CreatedAt:   1717200000000,
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"issueDate":"2024-01-10"`)
	assert.Contains(t, string(b), `"expiryDate":"2024-12-01"`)
	assert.Contains(t, string(b), `"locationId":"l1"`)
	assert.Contains(t, string(b), `"createdAt":1717200000000`)

	var back Document
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, doc, back)
}

func TestDocument_Expiry(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","category":"Frota","expiryDate":""}`), &doc))
	assert.Nil(t, doc.Expiry())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","category":"Frota"}`), &doc))
	assert.Nil(t, doc.Expiry())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","category":"Frota","expiryDate":"2030-01-01"}`), &doc))
	require.NotNil(t, doc.Expiry())
	assert.Equal(t, "2030-01-01", doc.Expiry().String())
}
