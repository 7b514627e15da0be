package service

import (
	"context"
	"time"

	"docflow/internal/model"
)

// Tracker is the surface the HTTP layer consumes: the collections, the six
// mutations, location name resolution and the derived read models.
type Tracker interface {
	Now() time.Time

	Documents() []model.Document
	Document(id string) (model.Document, bool)
	AddDocument(ctx context.Context, doc model.Document) (model.Document, error)
	UpdateDocument(ctx context.Context, doc model.Document) (model.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	Locations() []model.Location
	Location(id string) (model.Location, bool)
	AddLocation(ctx context.Context, loc model.Location) (model.Location, error)
	UpdateLocation(ctx context.Context, loc model.Location) (model.Location, error)
	DeleteLocation(ctx context.Context, id string) error
	LocationName(id string) string

	View(doc model.Document, now time.Time) DocumentView
	Report(f ReportFilter, now time.Time) []DocumentView
	Stats(now time.Time) Stats
}

var _ Tracker = (*Store)(nil)
