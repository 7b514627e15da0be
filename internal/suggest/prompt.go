package suggest

import (
	"strings"

	"docflow/internal/model"
)

const maxDescription = 2000

func buildCategoryPrompt(title, description string) string {
	if r := []rune(description); len(r) > maxDescription {
		description = string(r[:maxDescription])
	}

	labels := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		labels = append(labels, c.String())
	}

	return `You classify compliance documents of a company.
Choose the single best category for the document below from this list:
` + strings.Join(labels, ", ") + `.
Reply ONLY with the exact category name, with no punctuation or explanation.

Title: ` + title + `
Description: ` + description
}
