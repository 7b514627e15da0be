package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docflow/internal/config"
	"docflow/internal/model"
	"docflow/internal/service"
	"docflow/internal/storage"
)

func testConfig(backend, dir string) *config.AppConfig {
	return &config.AppConfig{
		Timezone: "UTC",
		Store:    config.StoreConfig{Backend: backend, Dir: dir, WarningWindowDays: 30},
	}
}

func TestNew_FileBackendPersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	app, err := New(ctx, testConfig(BackendFile, dir), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, service.StateReady, app.Store.State())

	_, err = app.Store.AddLocation(ctx, model.Location{ID: "l1", Name: "Matriz"})
	require.NoError(t, err)
	app.Close()

	_, err = os.Stat(filepath.Join(dir, "docflow_locations.json"))
	require.NoError(t, err)

	restarted, err := New(ctx, testConfig(BackendFile, dir), zap.NewNop())
	require.NoError(t, err)
	defer restarted.Close()
	assert.Equal(t, "Matriz", restarted.Store.LocationName("l1"))
}

func TestNew_RegistersStatusMetrics(t *testing.T) {
	app, err := New(context.Background(), testConfig(BackendMemory, ""), nil)
	require.NoError(t, err)
	defer app.Close()

	n, err := testutil.GatherAndCount(app.Registry, "docflow_documents", "docflow_locations")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNew_StoreClockUsesAppTimezone(t *testing.T) {
	cfg := testConfig(BackendMemory, "")
	cfg.Timezone = "Asia/Tokyo"

	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "Asia/Tokyo", app.Store.Now().Location().String())
}

func TestNew_SuggesterWithoutKeyReturnsNone(t *testing.T) {
	app, err := New(context.Background(), testConfig(BackendMemory, ""), nil)
	require.NoError(t, err)
	defer app.Close()

	_, ok := app.Suggester.Suggest(context.Background(), "Alvará de Funcionamento", "")
	assert.False(t, ok)
}

func TestNewBlobStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, closeFn, err := NewBlobStore(ctx, testConfig(BackendMemory, ""), nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &storage.Memory{}, s)
	})

	t.Run("file is the default", func(t *testing.T) {
		s, closeFn, err := NewBlobStore(ctx, testConfig("", t.TempDir()), nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &storage.LocalFS{}, s)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, closeFn, err := NewBlobStore(ctx, testConfig("cassandra", ""), nil)
		assert.ErrorContains(t, err, `unknown store backend "cassandra"`)
		assert.NotNil(t, closeFn)
	})

	t.Run("redis without url", func(t *testing.T) {
		_, _, err := NewBlobStore(ctx, testConfig(BackendRedis, ""), nil)
		assert.ErrorContains(t, err, "redis url is required")
	})
}
