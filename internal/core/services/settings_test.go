package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	data    map[string]any
	saveErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.data[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error  { return m.saveErr }
func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)

	want := domain.DefaultSettings()
	assert.Equal(t, &want, settings)
}

func TestSettingsService_Get_StoredValues(t *testing.T) {
	store := newMockConfigStore()
	store.data[domain.SettingDatabasePath] = "/data/sanctions.db"
	store.data[domain.SettingMaxAgeDays] = int64(30)
	store.data[domain.SettingHTTPAddr] = "127.0.0.1:9000"
	store.data[domain.SettingRequestsPerSecond] = 0.0

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, "/data/sanctions.db", settings.Database.Path)
	assert.Equal(t, 30, settings.Freshness.MaxAgeDays)
	assert.Equal(t, "127.0.0.1:9000", settings.Server.HTTPAddr)
	assert.Zero(t, settings.Server.RequestsPerSecond, "zero disables throttling")
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"path", domain.SettingDatabasePath, " /srv/db.sqlite ", "/srv/db.sqlite", false},
		{"max age", domain.SettingMaxAgeDays, "60", 60, false},
		{"max age not a number", domain.SettingMaxAgeDays, "soon", nil, true},
		{"max age zero", domain.SettingMaxAgeDays, "0", nil, true},
		{"rate", domain.SettingRequestsPerSecond, "2.5", 2.5, false},
		{"negative rate", domain.SettingRequestsPerSecond, "-1", nil, true},
		{"unknown key", "search.mode", "hybrid", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockConfigStore()
			err := NewSettingsService(store).Set(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Empty(t, store.data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.data[tt.key])
		})
	}
}

func TestSettingsService_Set_StoreError(t *testing.T) {
	store := newMockConfigStore()
	store.saveErr = errStorage

	err := NewSettingsService(store).Set(domain.SettingHTTPAddr, ":9090")
	assert.ErrorIs(t, err, errStorage)
}
