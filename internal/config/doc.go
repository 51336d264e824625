// Package config loads the layered configuration of the prospect console and
// its development stub server.
//
// Values are merged from environment variables, command-line flags, an
// optional JSON file, and built-in defaults (in that priority order) and then
// narrowed into per-binary views: [ConsoleConfig] for the interactive client
// and [ServerConfig] for the stub server.
package config
