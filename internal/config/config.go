package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the prospect
// console and its development stub server. It is populated by merging values
// from environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote prospecting API endpoint used by the console.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings: the SQLite session file
	// and the directory downloaded exports are saved into.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the development stub server settings. Ignored by the
	// console binary.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged with lower priority than env
	// and flags. Populated via the CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the outbound HTTP gateway.
type Adapter struct {
	// BaseURL is the base URL of the remote prospecting API
	// (e.g. "https://api.inohub.com.br").
	// Env: ADAPTER_API_URL
	BaseURL string `env:"API_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings for the console.
type Storage struct {
	// SessionDSN is the SQLite file path where the bearer token and operator
	// profile are persisted between runs.
	// Env: STORAGE_SESSION_DB
	SessionDSN string `env:"SESSION_DB"`

	// DownloadDir is the directory downloaded prospect exports are written
	// into.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Server holds the development stub server settings.
type Server struct {
	// Address is the TCP address the stub server listens on, in "host:port"
	// format.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSignKey is the secret used to sign the stub's bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is how long issued tokens remain valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ReadyAfter is the delay after which a created prospect job is reported
	// as ready for download.
	// Env: SERVER_READY_AFTER
	ReadyAfter time.Duration `env:"READY_AFTER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
