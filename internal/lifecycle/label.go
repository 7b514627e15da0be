package lifecycle

import (
	"fmt"

	"docflow/internal/model"
)

// DaysRemaining is the number of whole calendar days from today to target.
func DaysRemaining(target, today model.Date) int {
	return today.DaysUntil(target)
}

// RemainingLabel is the detail-page label for the time left until target.
func RemainingLabel(target, today model.Date) string {
	diff := DaysRemaining(target, today)
	switch {
	case diff < 0:
		return fmt.Sprintf("Vencido há %d dias", -diff)
	case diff == 0:
		return "Vence hoje"
	case diff == 1:
		return "Vence amanhã"
	default:
		return fmt.Sprintf("Faltam %d dias", diff)
	}
}

// CompactRemainingLabel is the shorter form used in report tables.
func CompactRemainingLabel(target, today model.Date) string {
	diff := DaysRemaining(target, today)
	switch {
	case diff < 0:
		return fmt.Sprintf("%d dias atrás", -diff)
	case diff == 0:
		return "Hoje"
	case diff == 1:
		return "Amanhã"
	default:
		return fmt.Sprintf("%d dias", diff)
	}
}
