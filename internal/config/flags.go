package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote API base URL
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-s session database path (SQLite file)
//	-o download directory for prospect exports
//	-address stub server listen address in format [host]:[port]
//	-token-sign-key stub server token signing key
//	-token-duration stub server token lifetime (e.g., "24h")
//	-ready-after stub server delay before a job becomes downloadable
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiURL string
	var requestTimeout time.Duration
	var sessionDSN string
	var downloadDir string
	var serverAddress string
	var tokenSignKey string
	var tokenDuration time.Duration
	var readyAfter time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiURL, "a", "", "Remote API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&sessionDSN, "s", "", "Session database path")
	flag.StringVar(&downloadDir, "o", "", "Download directory")
	flag.StringVar(&serverAddress, "address", "", "Stub server listen address host:port")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Stub server token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Stub server token lifetime (e.g., 24h)")
	flag.DurationVar(&readyAfter, "ready-after", 0, "Stub server job readiness delay (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionDSN:  sessionDSN,
			DownloadDir: downloadDir,
		},
		Server: Server{
			Address:       serverAddress,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			ReadyAfter:    readyAfter,
		},
		JSONFilePath: jsonConfigPath,
	}
}
