// Package config loads the TOML configuration of the text metrics server.
//
// Defaults are applied first, then an optional file is decoded on top of
// them, then the result is validated. Command-line flags in cmd/server
// override individual values after loading.
package config
