package driving

import "github.com/custodia-labs/sanctions-law/internal/core/domain"

// SettingsService reads and updates the configuration file.
type SettingsService interface {
	// Get returns the effective settings: stored values over defaults.
	Get() (*domain.Settings, error)

	// Set validates and stores one setting by its dotted key.
	Set(key, value string) error
}
