package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/testfixtures"
)

var errStorage = errors.New("storage unavailable")

// newSeededStore creates a temp SQLite store loaded with the fixture dataset.
func newSeededStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sanctions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.CreateSchema(ctx))
	require.NoError(t, store.Seed(ctx, testfixtures.Dataset()))
	return store
}

// --- Mock implementations ---

// mockProvisionStore implements driven.ProvisionStore for testing.
type mockProvisionStore struct {
	lastSearch domain.ProvisionSearch
	lastLimit  int
	err        error
}

func (m *mockProvisionStore) Search(_ context.Context, q domain.ProvisionSearch) ([]domain.ProvisionHit, error) {
	m.lastSearch = q
	return []domain.ProvisionHit{}, m.err
}

func (m *mockProvisionStore) Get(_ context.Context, _, _ string) (*domain.ProvisionDetail, error) {
	return nil, m.err
}

func (m *mockProvisionStore) ByRegime(_ context.Context, _ string, _ int64, limit int) ([]domain.ProvisionRef, error) {
	m.lastLimit = limit
	return nil, m.err
}

func (m *mockProvisionStore) ByTopic(_ context.Context, _ string, _ int64, limit int) ([]domain.ProvisionRef, error) {
	m.lastLimit = limit
	return nil, m.err
}

func (m *mockProvisionStore) BySourceKinds(_ context.Context, _ string, _ []string, limit int) ([]domain.ProvisionRef, error) {
	m.lastLimit = limit
	return nil, m.err
}

func (m *mockProvisionStore) Cyber(_ context.Context, _ string, limit int) ([]domain.CyberProvision, error) {
	m.lastLimit = limit
	return nil, m.err
}

// mockRegimeStore implements driven.RegimeStore for testing.
type mockRegimeStore struct {
	lastFind      domain.RegimeQuery
	lastDelisting domain.DelistingQuery
	regimes       []domain.Regime
	err           error
	countErr      error
}

func (m *mockRegimeStore) Find(_ context.Context, q domain.RegimeQuery) ([]domain.Regime, error) {
	m.lastFind = q
	return m.regimes, m.err
}

func (m *mockRegimeStore) CountLinks(_ context.Context, _ string) (int, int, error) {
	return 0, 0, m.countErr
}

func (m *mockRegimeStore) Cyber(_ context.Context, _ string, _ int) ([]domain.Regime, error) {
	return nil, m.err
}

func (m *mockRegimeStore) DelistingProcedures(_ context.Context, q domain.DelistingQuery) ([]domain.DelistingDetail, error) {
	m.lastDelisting = q
	return nil, m.err
}

// mockFreshnessStore implements driven.FreshnessStore for testing.
type mockFreshnessStore struct {
	records []domain.FreshnessRecord
	err     error
}

func (m *mockFreshnessStore) List(_ context.Context) ([]domain.FreshnessRecord, error) {
	return m.records, m.err
}
