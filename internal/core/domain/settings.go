package domain

// Settings keys as stored in the configuration file.
const (
	SettingDatabasePath      = "database.path"
	SettingMaxAgeDays        = "freshness.max_age_days"
	SettingHTTPAddr          = "server.http_addr"
	SettingRequestsPerSecond = "server.requests_per_second"
)

// DatabaseSettings locates the built database file.
type DatabaseSettings struct {
	// Path is the SQLite file. Empty means the default data directory.
	Path string
}

// FreshnessSettings tunes the freshness report.
type FreshnessSettings struct {
	// MaxAgeDays is the default cut-off for is_within_max_age.
	MaxAgeDays int
}

// ServerSettings configures the HTTP transport.
type ServerSettings struct {
	// HTTPAddr is the listen address, e.g. ":8080".
	HTTPAddr string

	// RequestsPerSecond throttles the HTTP transport. Zero disables throttling.
	RequestsPerSecond float64
}

// Settings is the complete application configuration.
type Settings struct {
	Database  DatabaseSettings
	Freshness FreshnessSettings
	Server    ServerSettings
}

// DefaultSettings returns the configuration used when nothing is set.
func DefaultSettings() Settings {
	return Settings{
		Freshness: FreshnessSettings{MaxAgeDays: DefaultMaxAgeDays},
		Server: ServerSettings{
			HTTPAddr:          ":8080",
			RequestsPerSecond: 20,
		},
	}
}
