// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the recipe
// keeper. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
//   - json/yaml: key names inside the config file.
type StructuredConfig struct {
	// App holds session token parameters, password storage mode and
	// profile defaults.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Storage holds the key-value store connection settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// Server holds the loopback HTTP API settings.
	Server Server `envPrefix:"SERVER_" json:"server" yaml:"server"`

	// Adapter holds the public recipe API client settings.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter" yaml:"adapter"`

	// Workers holds settings of the startup workers.
	Workers Workers `envPrefix:"WORKERS_" json:"workers" yaml:"workers"`

	// ConfigFilePath is the optional path to a JSON (.json) or YAML
	// (.yaml/.yml) configuration file merged on top of the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" envDefault:"recipe-keeper-local-key" json:"token_sign_key" yaml:"token_sign_key"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-recipe-keeper" json:"token_issuer" yaml:"token_issuer"`

	// TokenDuration is how long a session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration Duration `env:"TOKEN_DURATION" envDefault:"24h" json:"token_duration" yaml:"token_duration"`

	// PasswordHashing selects how credentials are stored: "plain" keeps the
	// submitted password as-is, "bcrypt" stores a bcrypt hash.
	// Env: APP_PASSWORD_HASHING
	PasswordHashing string `env:"PASSWORD_HASHING" envDefault:"plain" json:"password_hashing" yaml:"password_hashing"`

	// DefaultPhotoURL replaces an empty profile photo on profile update.
	// Env: APP_DEFAULT_PHOTO_URL
	DefaultPhotoURL string `env:"DEFAULT_PHOTO_URL" envDefault:"https://via.placeholder.com/150" json:"default_photo_url" yaml:"default_photo_url"`

	// LogLevel is the zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug" json:"log_level" yaml:"log_level"`

	// Version is the application version served by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version" yaml:"version"`
}

// Storage groups the storage backend settings.
type Storage struct {
	// DB holds the key-value store connection settings.
	DB DB `envPrefix:"DB_" json:"db" yaml:"db"`
}

// DB holds connection settings for the key-value store.
type DB struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." uses
	// PostgreSQL, "memory" or ":memory:" keeps data in process memory, any
	// other value is a SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" envDefault:"recipes.db" json:"dsn" yaml:"dsn"`
}

// Server holds the loopback HTTP API settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080" json:"http_address" yaml:"http_address"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" envDefault:"30s" json:"request_timeout" yaml:"request_timeout"`
}

// Adapter holds settings of the public recipe API client.
type Adapter struct {
	// MealDBURL is the TheMealDB API base URL.
	// Env: ADAPTER_MEALDB_URL
	MealDBURL string `env:"MEALDB_URL" envDefault:"https://www.themealdb.com/api/json/v1/1" json:"mealdb_url" yaml:"mealdb_url"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" envDefault:"15s" json:"request_timeout" yaml:"request_timeout"`
}

// Workers holds settings of the startup workers.
type Workers struct {
	// SkipLegacyMigration disables the one-time legacy data migration that
	// otherwise runs at startup. An unsplit legacy user is then split on its
	// first successful login.
	// Env: WORKERS_SKIP_LEGACY_MIGRATION
	SkipLegacyMigration bool `env:"SKIP_LEGACY_MIGRATION" json:"skip_legacy_migration" yaml:"skip_legacy_migration"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv("DOTENV")).
		withEnv().
		withFlags(commandLineArgs()).
		withFile().
		build()
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in env, JSON and YAML sources.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
