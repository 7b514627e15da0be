package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"docflow/internal/config"
	"docflow/internal/database"
	"docflow/internal/database/migration"
	"docflow/internal/logger"
	"docflow/internal/model"
	"docflow/internal/repository"
	"docflow/internal/repository/postgres"
	"docflow/internal/service"
	"docflow/internal/storage"
	"docflow/internal/suggest"
)

// Snapshot backends selectable with STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendMinIO    = "minio"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type App struct {
	Config *config.AppConfig

	Blobs     storage.BlobStore
	Store     *service.Store
	Suggester suggest.Suggester
	Registry  *prometheus.Registry

	closeFns []func()
}

// New wires the snapshot backend, loads the store and prepares the
// suggestion client and metrics registry.
func New(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)
	app := &App{Config: cfg}

	blobs, closeFn, err := NewBlobStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	app.Blobs = blobs
	app.onClose(closeFn)

	app.Store = service.NewStore(
		repository.NewSnapshot[model.Document](blobs, repository.DocumentsKey),
		repository.NewSnapshot[model.Location](blobs, repository.LocationsKey),
		log,
		service.WithStrict(cfg.Store.Strict),
		service.WithWarningWindow(cfg.Store.WarningWindowDays),
		service.WithLocation(cfg.Location()),
	)
	if err := app.Store.Load(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("load store: %w", err)
	}

	app.Suggester = suggest.NewClient(cfg.Suggest, log)
	if cfg.Suggest.APIKey == "" {
		log.Info("category_suggestions_disabled", zap.String("reason", "API_KEY not set"))
	}

	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		service.NewStatusCollector(app.Store),
	)

	return app, nil
}

// NewBlobStore opens the backend named by cfg.Store.Backend. The returned
// close function is never nil.
func NewBlobStore(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (storage.BlobStore, func(), error) {
	noop := func() {}
	backend := cfg.Store.Backend
	log = logger.OrNop(log).With(zap.String("backend", backend))

	switch backend {
	case BackendMemory:
		log.Warn("snapshot_backend_volatile")
		return storage.NewMemory(), noop, nil

	case BackendFile, "":
		fs, err := storage.NewLocalFS(cfg.Store.Dir)
		if err != nil {
			return nil, noop, fmt.Errorf("init file store: %w", err)
		}
		log.Info("snapshot_backend_ready", zap.String("dir", cfg.Store.Dir))
		return fs, noop, nil

	case BackendMinIO:
		s, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, noop, fmt.Errorf("init object storage: %w", err)
		}
		log.Info("snapshot_backend_ready", zap.String("bucket", cfg.MinIO.Bucket))
		return s, noop, nil

	case BackendRedis:
		s, err := storage.NewRedis(cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("init redis: %w", err)
		}
		log.Info("snapshot_backend_ready")
		return s, closer(s), nil

	case BackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		log.Info("snapshot_backend_ready")
		return postgres.NewBlobPostgres(db), func() { _ = db.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", backend)
	}
}

func closer(v any) func() {
	if c, ok := v.(io.Closer); ok {
		return func() { _ = c.Close() }
	}
	return func() {}
}

func (a *App) onClose(fn func()) {
	a.closeFns = append(a.closeFns, fn)
}

// Close releases backend connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closeFns) - 1; i >= 0; i-- {
		a.closeFns[i]()
	}
	a.closeFns = nil
}
