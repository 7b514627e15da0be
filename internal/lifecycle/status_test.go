package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docflow/internal/model"
)

func datePtr(s string) *model.Date {
	d := model.MustParseDate(s)
	return &d
}

func TestDerive(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		expiry *model.Date
		want   model.Status
	}{
		{name: "no expiry", expiry: nil, want: model.StatusActive},
		{name: "zero expiry", expiry: &model.Date{}, want: model.StatusActive},
		{name: "yesterday", expiry: datePtr("2024-05-31"), want: model.StatusExpired},
		{name: "long past", expiry: datePtr("2024-05-15"), want: model.StatusExpired},
		{name: "today", expiry: datePtr("2024-06-01"), want: model.StatusExpiring},
		{name: "tomorrow", expiry: datePtr("2024-06-02"), want: model.StatusExpiring},
		{name: "within window", expiry: datePtr("2024-06-20"), want: model.StatusExpiring},
		{name: "window edge", expiry: datePtr("2024-07-01"), want: model.StatusExpiring},
		{name: "past window", expiry: datePtr("2024-07-02"), want: model.StatusActive},
		{name: "far future", expiry: datePtr("2024-12-01"), want: model.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.expiry, now, DefaultWarningWindowDays))
		})
	}
}

func TestDerive_NoExpiryIgnoresNow(t *testing.T) {
	for _, now := range []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2999, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		assert.Equal(t, model.StatusActive, Derive(nil, now, DefaultWarningWindowDays))
	}
}

func TestDerive_TimeOfDayIgnored(t *testing.T) {
	expiry := datePtr("2024-06-01")
	early := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, model.StatusExpiring, Derive(expiry, early, 30))
	assert.Equal(t, model.StatusExpiring, Derive(expiry, late, 30))
}

func TestDerive_CustomWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, model.StatusActive, Derive(datePtr("2024-06-20"), now, 7))
	assert.Equal(t, model.StatusExpiring, Derive(datePtr("2024-06-08"), now, 7))
	assert.Equal(t, model.StatusExpiring, Derive(datePtr("2024-06-01"), now, 0))
	assert.Equal(t, model.StatusActive, Derive(datePtr("2024-06-02"), now, -5))
}

func TestDerive_Scenario(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	today := Today(now)

	a := model.Document{ID: "A", ExpiryDate: datePtr("2024-05-15")}
	b := model.Document{ID: "B", ExpiryDate: datePtr("2024-06-20")}
	c := model.Document{ID: "C", ExpiryDate: datePtr("2024-12-01")}
	d := model.Document{ID: "D"}

	assert.Equal(t, model.StatusExpired, DeriveDocument(a, now, 30))
	assert.Equal(t, "17 dias atrás", CompactRemainingLabel(*a.ExpiryDate, today))
	assert.Equal(t, model.StatusExpiring, DeriveDocument(b, now, 30))
	assert.Equal(t, model.StatusActive, DeriveDocument(c, now, 30))
	assert.Equal(t, model.StatusActive, DeriveDocument(d, now, 30))
}

func TestRemainingLabel(t *testing.T) {
	today := model.MustParseDate("2024-06-01")

	tests := []struct {
		target  string
		detail  string
		compact string
	}{
		{"2024-05-31", "Vencido há 1 dias", "1 dias atrás"},
		{"2024-05-20", "Vencido há 12 dias", "12 dias atrás"},
		{"2024-06-01", "Vence hoje", "Hoje"},
		{"2024-06-02", "Vence amanhã", "Amanhã"},
		{"2024-06-20", "Faltam 19 dias", "19 dias"},
	}

	for _, tt := range tests {
		target := model.MustParseDate(tt.target)
		assert.Equal(t, tt.detail, RemainingLabel(target, today), tt.target)
		assert.Equal(t, tt.compact, CompactRemainingLabel(target, today), tt.target)
	}
}

func TestRemainingLabel_DistantDates(t *testing.T) {
	today := model.MustParseDate("2024-06-01")

	tests := []struct {
		target  string
		days    int
		detail  string
		compact string
	}{
		{"9999-12-31", 2913021, "Faltam 2913021 dias", "2913021 dias"},
		{"1700-01-01", -118490, "Vencido há 118490 dias", "118490 dias atrás"},
	}

	for _, tt := range tests {
		target := model.MustParseDate(tt.target)
		assert.Equal(t, tt.days, DaysRemaining(target, today), tt.target)
		assert.Equal(t, tt.detail, RemainingLabel(target, today), tt.target)
		assert.Equal(t, tt.compact, CompactRemainingLabel(target, today), tt.target)
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, model.StatusActive, Derive(datePtr("9999-12-31"), now, 30))
	assert.Equal(t, model.StatusExpired, Derive(datePtr("1700-01-01"), now, 30))
}
