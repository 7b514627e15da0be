package mocks

import (
	"context"
	"time"

	"docflow/internal/model"
	"docflow/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockTracker struct {
	mock.Mock
}

var _ service.Tracker = (*MockTracker)(nil)

func (m *MockTracker) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTracker) Documents() []model.Document {
	args := m.Called()
	return args.Get(0).([]model.Document)
}

func (m *MockTracker) Document(id string) (model.Document, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Document), args.Bool(1)
}

func (m *MockTracker) AddDocument(ctx context.Context, doc model.Document) (model.Document, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockTracker) UpdateDocument(ctx context.Context, doc model.Document) (model.Document, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockTracker) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTracker) Locations() []model.Location {
	args := m.Called()
	return args.Get(0).([]model.Location)
}

func (m *MockTracker) Location(id string) (model.Location, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Location), args.Bool(1)
}

func (m *MockTracker) AddLocation(ctx context.Context, loc model.Location) (model.Location, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(model.Location), args.Error(1)
}

func (m *MockTracker) UpdateLocation(ctx context.Context, loc model.Location) (model.Location, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(model.Location), args.Error(1)
}

func (m *MockTracker) DeleteLocation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTracker) LocationName(id string) string {
	args := m.Called(id)
	return args.String(0)
}

func (m *MockTracker) View(doc model.Document, now time.Time) service.DocumentView {
	args := m.Called(doc, now)
	return args.Get(0).(service.DocumentView)
}

func (m *MockTracker) Report(f service.ReportFilter, now time.Time) []service.DocumentView {
	args := m.Called(f, now)
	return args.Get(0).([]service.DocumentView)
}

func (m *MockTracker) Stats(now time.Time) service.Stats {
	args := m.Called(now)
	return args.Get(0).(service.Stats)
}
