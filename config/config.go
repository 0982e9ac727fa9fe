// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Ivashin

package config

// Config is the top-level configuration container for a servekit server
// binary. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Server holds network settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// App holds application-level settings: the project manifest location
	// and the OpenAPI export target.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network address settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string `env:"ADDRESS"`
}

// App holds application-level settings.
type App struct {
	// ManifestPath is the path to the TOML project manifest the version
	// endpoint reads. The manifest must carry a `version` field.
	ManifestPath string `env:"MANIFEST_PATH"`

	// SpecPath, when non-empty, is the file path the generated OpenAPI
	// document is exported to at startup.
	SpecPath string `env:"SPEC_PATH"`
}

// Defaults applied by validate for fields no source set.
const (
	DefaultHTTPAddress  = ":8080"
	DefaultManifestPath = "manifest.toml"
)

// GetConfig loads, merges, and validates the server configuration from all
// sources.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (c *Config) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.App.ManifestPath == "" {
		c.App.ManifestPath = DefaultManifestPath
	}
	return nil
}
