package config

import (
	"fmt"
	"time"
)

// ConsoleConfig is the console-specific view of the merged configuration: it
// carries only the fields the interactive client needs.
type ConsoleConfig struct {
	// App contains application-level settings.
	App App
	// Adapter contains the remote API endpoint and request timeout.
	Adapter Adapter
	// Storage contains the session database path and download directory.
	Storage Storage
}

// ServerConfig is the stub-server view of the merged configuration.
type ServerConfig struct {
	// Address is the TCP listen address.
	Address string
	// TokenSignKey signs issued bearer tokens.
	TokenSignKey string
	// TokenDuration is the issued token lifetime.
	TokenDuration time.Duration
	// ReadyAfter is the delay before a created job becomes downloadable.
	ReadyAfter time.Duration
}

// GetConsoleConfig builds and validates the console view from the merged
// structured configuration.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
	}

	return consoleCfg, consoleCfg.validate()
}

// GetServerConfig builds and validates the stub-server view from the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Address:       cfg.Server.Address,
		TokenSignKey:  cfg.Server.TokenSignKey,
		TokenDuration: cfg.Server.TokenDuration,
		ReadyAfter:    cfg.Server.ReadyAfter,
	}

	return serverCfg, serverCfg.validate()
}
