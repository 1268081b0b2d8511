package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/testfixtures"
)

// mockSeedReader implements driven.SeedReader for testing.
type mockSeedReader struct {
	ds  *domain.Dataset
	err error
}

func (m *mockSeedReader) Read(_ context.Context, _ string) (*domain.Dataset, error) {
	return m.ds, m.err
}

// mockSeedStore implements driven.SeedStore and records calls.
type mockSeedStore struct {
	rebuildCalls int
	rebuildErr   error
}

func (m *mockSeedStore) Rebuild(_ context.Context, _ *domain.Dataset) error {
	m.rebuildCalls++
	return m.rebuildErr
}

func TestSeedService_Load(t *testing.T) {
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sanctions.db"))
	require.NoError(t, err)
	defer store.Close()

	svc := NewSeedService(&mockSeedReader{ds: testfixtures.Dataset()}, store, store)

	sum, err := svc.Load(context.Background(), "seed.json")
	require.NoError(t, err)
	assert.Equal(t, testfixtures.ProvisionCount, sum.Provisions)
	assert.Equal(t, testfixtures.FreshnessCount, sum.Freshness)

	// Loading again rebuilds rather than duplicating.
	sum, err = svc.Load(context.Background(), "seed.json")
	require.NoError(t, err)
	assert.Equal(t, testfixtures.ProvisionCount, sum.Provisions)
}

func TestSeedService_Load_InvalidSeedWritesNothing(t *testing.T) {
	store := &mockSeedStore{}
	reader := &mockSeedReader{err: fmt.Errorf("%w: missing provisions", domain.ErrInvalidSeed)}

	_, err := NewSeedService(reader, store, nil).Load(context.Background(), "seed.json")
	assert.ErrorIs(t, err, domain.ErrInvalidSeed)
	assert.Zero(t, store.rebuildCalls)
}

func TestSeedService_Load_SeedError(t *testing.T) {
	store := &mockSeedStore{rebuildErr: errStorage}
	reader := &mockSeedReader{ds: testfixtures.Dataset()}

	_, err := NewSeedService(reader, store, nil).Load(context.Background(), "seed.json")
	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, 1, store.rebuildCalls)
}

func TestSeedService_Load_BrokenSeedKeepsPreviousBuild(t *testing.T) {
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sanctions.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, err = NewSeedService(&mockSeedReader{ds: testfixtures.Dataset()}, store, store).Load(ctx, "seed.json")
	require.NoError(t, err)

	broken := testfixtures.Dataset()
	broken.Provisions[0].SourceID = "NO_SUCH_SOURCE"
	_, err = NewSeedService(&mockSeedReader{ds: broken}, store, store).Load(ctx, "seed.json")
	require.Error(t, err)

	sum, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, testfixtures.ProvisionCount, sum.Provisions)
}
