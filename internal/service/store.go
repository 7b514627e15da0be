package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docflow/internal/lifecycle"
	"docflow/internal/logger"
	"docflow/internal/model"
	"docflow/internal/repository"
)

var (
	ErrNotReady    = errors.New("store not loaded")
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("id already exists")
)

// State is the store lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// Option configures a Store.
type Option func(*Store)

// WithStrict makes update and delete of an unknown id return ErrNotFound
// instead of silently doing nothing.
func WithStrict(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

// WithWarningWindow sets the expiring lookahead in days.
func WithWarningWindow(days int) Option {
	return func(s *Store) {
		if days >= 0 {
			s.windowDays = days
		}
	}
}

// WithClock overrides the time source used for createdAt and status.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone whose calendar date is "today" for derived
// status computed from the store clock.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// Store owns the document and location collections. Every mutation runs
// under its collection's lock and is flushed as a full snapshot before it
// returns. A failed flush leaves the previous in-memory collection in place.
type Store struct {
	docsRepo *repository.Snapshot[model.Document]
	locsRepo *repository.Snapshot[model.Location]
	log      *zap.Logger

	strict     bool
	windowDays int
	now        func() time.Time
	loc        *time.Location

	stateMu sync.RWMutex
	state   State

	docsMu sync.RWMutex
	docs   []model.Document

	locsMu sync.RWMutex
	locs   []model.Location
}

// NewStore returns an uninitialized store; call Load before mutating it.
func NewStore(docs *repository.Snapshot[model.Document], locs *repository.Snapshot[model.Location], log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		docsRepo:   docs,
		locsRepo:   locs,
		log:        logger.OrNop(log).With(zap.String("component", "store")),
		windowDays: lifecycle.DefaultWarningWindowDays,
		now:        time.Now,
		docs:       []model.Document{},
		locs:       []model.Location{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports whether Load has completed.
func (s *Store) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Strict reports whether unknown-id mutations are reported.
func (s *Store) Strict() bool { return s.strict }

// WarningWindowDays is the expiring lookahead used for derived status.
func (s *Store) WarningWindowDays() int { return s.windowDays }

// Now returns the store clock's current time, in the store location when one
// is set.
func (s *Store) Now() time.Time {
	now := s.now()
	if s.loc != nil {
		return now.In(s.loc)
	}
	return now
}

// Load reads both collections from durable storage and marks the store
// ready. A missing or corrupt snapshot starts that collection empty; corrupt
// ones are logged as a warning. Backend failures are returned so that an
// unreachable store is never mistaken for an empty one.
func (s *Store) Load(ctx context.Context) error {
	var (
		docs []model.Document
		locs []model.Location
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.docsRepo.Load(gctx)
		docs, err = recoverCorrupt(s.log, s.docsRepo.Key(), items, err)
		return err
	})
	g.Go(func() error {
		items, err := s.locsRepo.Load(gctx)
		locs, err = recoverCorrupt(s.log, s.locsRepo.Key(), items, err)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.docsMu.Lock()
	s.docs = docs
	s.docsMu.Unlock()

	s.locsMu.Lock()
	s.locs = locs
	s.locsMu.Unlock()

	s.stateMu.Lock()
	s.state = StateReady
	s.stateMu.Unlock()

	s.log.Info("store_loaded", zap.Int("documents", len(docs)), zap.Int("locations", len(locs)))
	return nil
}

func recoverCorrupt[T any](log *zap.Logger, key string, items []T, err error) ([]T, error) {
	if err == nil {
		return items, nil
	}
	if errors.Is(err, repository.ErrCorrupt) {
		log.Warn("snapshot_corrupt_starting_empty", zap.String("key", key), zap.Error(err))
		return []T{}, nil
	}
	return nil, err
}

func (s *Store) ready() error {
	if s.State() != StateReady {
		return ErrNotReady
	}
	return nil
}

func (s *Store) notFound(kind, id string) error {
	if !s.strict {
		s.log.Debug("mutation_unknown_id_ignored", zap.String("kind", kind), zap.String("id", id))
		return nil
	}
	return &NotFoundError{Kind: kind, ID: id}
}

// NotFoundError reports a strict-mode miss. It matches ErrNotFound.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return e.Kind + " " + e.ID + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Documents returns a copy of the document collection in insertion order.
func (s *Store) Documents() []model.Document {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()
	out := make([]model.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Document looks up a document by id.
func (s *Store) Document(id string) (model.Document, bool) {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()
	if i := indexOfDocument(s.docs, id); i >= 0 {
		return s.docs[i], true
	}
	return model.Document{}, false
}

// AddDocument validates doc, fills defaults and appends it.
// The caller generates the id; a duplicate id is rejected.
func (s *Store) AddDocument(ctx context.Context, doc model.Document) (model.Document, error) {
	if err := s.ready(); err != nil {
		return model.Document{}, err
	}
	doc = normalizeDocument(doc)
	if doc.CreatedAt == 0 {
		doc.CreatedAt = s.now().UnixMilli()
	}
	if err := ValidateDocument(doc); err != nil {
		return model.Document{}, err
	}

	s.docsMu.Lock()
	defer s.docsMu.Unlock()

	if indexOfDocument(s.docs, doc.ID) >= 0 {
		return model.Document{}, ErrDuplicateID
	}

	next := make([]model.Document, len(s.docs), len(s.docs)+1)
	copy(next, s.docs)
	next = append(next, doc)
	if err := s.commitDocs(ctx, next); err != nil {
		return model.Document{}, err
	}

	s.log.Info("document_added", zap.String("id", doc.ID), zap.String("category", doc.Category.String()))
	return doc, nil
}

// UpdateDocument replaces the document with the same id, keeping the stored
// createdAt. An unknown id is a no-op unless the store is strict.
func (s *Store) UpdateDocument(ctx context.Context, doc model.Document) (model.Document, error) {
	if err := s.ready(); err != nil {
		return model.Document{}, err
	}
	doc = normalizeDocument(doc)
	if err := ValidateDocument(doc); err != nil {
		return model.Document{}, err
	}

	s.docsMu.Lock()
	defer s.docsMu.Unlock()

	i := indexOfDocument(s.docs, doc.ID)
	if i < 0 {
		return model.Document{}, s.notFound("document", doc.ID)
	}
	doc.CreatedAt = s.docs[i].CreatedAt

	next := make([]model.Document, len(s.docs))
	copy(next, s.docs)
	next[i] = doc
	if err := s.commitDocs(ctx, next); err != nil {
		return model.Document{}, err
	}

	s.log.Info("document_updated", zap.String("id", doc.ID))
	return doc, nil
}

// DeleteDocument removes the document with the given id.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	s.docsMu.Lock()
	defer s.docsMu.Unlock()

	i := indexOfDocument(s.docs, id)
	if i < 0 {
		return s.notFound("document", id)
	}

	next := make([]model.Document, 0, len(s.docs)-1)
	next = append(next, s.docs[:i]...)
	next = append(next, s.docs[i+1:]...)
	if err := s.commitDocs(ctx, next); err != nil {
		return err
	}

	s.log.Info("document_deleted", zap.String("id", id))
	return nil
}

// commitDocs persists next and swaps it in. Callers hold docsMu.
func (s *Store) commitDocs(ctx context.Context, next []model.Document) error {
	if err := s.docsRepo.Save(ctx, next); err != nil {
		s.log.Error("snapshot_flush_failed", zap.String("key", s.docsRepo.Key()), zap.Error(err))
		return err
	}
	s.docs = next
	return nil
}

// Locations returns a copy of the location collection in insertion order.
func (s *Store) Locations() []model.Location {
	s.locsMu.RLock()
	defer s.locsMu.RUnlock()
	out := make([]model.Location, len(s.locs))
	copy(out, s.locs)
	return out
}

// Location looks up a location by id.
func (s *Store) Location(id string) (model.Location, bool) {
	s.locsMu.RLock()
	defer s.locsMu.RUnlock()
	if i := indexOfLocation(s.locs, id); i >= 0 {
		return s.locs[i], true
	}
	return model.Location{}, false
}

// LocationName resolves a location id to its name, or to
// model.UnknownLocationName when no such location exists.
func (s *Store) LocationName(id string) string {
	if loc, ok := s.Location(id); ok {
		return loc.Name
	}
	return model.UnknownLocationName
}

// AddLocation validates and appends loc.
func (s *Store) AddLocation(ctx context.Context, loc model.Location) (model.Location, error) {
	if err := s.ready(); err != nil {
		return model.Location{}, err
	}
	loc = normalizeLocation(loc)
	if err := ValidateLocation(loc); err != nil {
		return model.Location{}, err
	}

	s.locsMu.Lock()
	defer s.locsMu.Unlock()

	if indexOfLocation(s.locs, loc.ID) >= 0 {
		return model.Location{}, ErrDuplicateID
	}

	next := make([]model.Location, len(s.locs), len(s.locs)+1)
	copy(next, s.locs)
	next = append(next, loc)
	if err := s.commitLocs(ctx, next); err != nil {
		return model.Location{}, err
	}

	s.log.Info("location_added", zap.String("id", loc.ID))
	return loc, nil
}

// UpdateLocation replaces the location with the same id.
func (s *Store) UpdateLocation(ctx context.Context, loc model.Location) (model.Location, error) {
	if err := s.ready(); err != nil {
		return model.Location{}, err
	}
	loc = normalizeLocation(loc)
	if err := ValidateLocation(loc); err != nil {
		return model.Location{}, err
	}

	s.locsMu.Lock()
	defer s.locsMu.Unlock()

	i := indexOfLocation(s.locs, loc.ID)
	if i < 0 {
		return model.Location{}, s.notFound("location", loc.ID)
	}

	next := make([]model.Location, len(s.locs))
	copy(next, s.locs)
	next[i] = loc
	if err := s.commitLocs(ctx, next); err != nil {
		return model.Location{}, err
	}

	s.log.Info("location_updated", zap.String("id", loc.ID))
	return loc, nil
}

// DeleteLocation removes the location. Documents that reference it are left
// untouched and resolve to model.UnknownLocationName afterwards.
func (s *Store) DeleteLocation(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	s.locsMu.Lock()
	defer s.locsMu.Unlock()

	i := indexOfLocation(s.locs, id)
	if i < 0 {
		return s.notFound("location", id)
	}

	next := make([]model.Location, 0, len(s.locs)-1)
	next = append(next, s.locs[:i]...)
	next = append(next, s.locs[i+1:]...)
	if err := s.commitLocs(ctx, next); err != nil {
		return err
	}

	s.log.Info("location_deleted", zap.String("id", id))
	return nil
}

// commitLocs persists next and swaps it in. Callers hold locsMu.
func (s *Store) commitLocs(ctx context.Context, next []model.Location) error {
	if err := s.locsRepo.Save(ctx, next); err != nil {
		s.log.Error("snapshot_flush_failed", zap.String("key", s.locsRepo.Key()), zap.Error(err))
		return err
	}
	s.locs = next
	return nil
}

func indexOfDocument(docs []model.Document, id string) int {
	for i := range docs {
		if docs[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfLocation(locs []model.Location, id string) int {
	for i := range locs {
		if locs[i].ID == id {
			return i
		}
	}
	return -1
}
