// Package suggest proposes a document category from its title and
// description. Suggestions are advisory: every failure collapses to "no
// suggestion" and is never returned to the caller.
package suggest

import (
	"context"

	"docflow/internal/model"
)

// Suggester returns a best-guess category, or false when it has none.
type Suggester interface {
	Suggest(ctx context.Context, title, description string) (model.Category, bool)
}

// Noop never suggests anything.
type Noop struct{}

func (Noop) Suggest(context.Context, string, string) (model.Category, bool) {
	return "", false
}
