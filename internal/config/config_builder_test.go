package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:    "key",
			TokenIssuer:     "issuer",
			TokenDuration:   Duration(time.Hour),
			PasswordHashing: PasswordHashingPlain,
		},
		Storage: Storage{DB: DB{DSN: "memory"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: Duration(time.Second)},
		Adapter: Adapter{MealDBURL: "https://example.com/api", RequestTimeout: Duration(time.Second)},
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config does not pass validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	override := &StructuredConfig{
		App:     App{TokenIssuer: "override"},
		Storage: Storage{DB: DB{DSN: "recipes.db"}},
	}
	b.configs = append(b.configs, validConfig(), override)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, "recipes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration.Std())
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_DURATION", "90m")
	t.Setenv("STORAGE_DB_DSN", "postgres://u:p@localhost/db")
	t.Setenv("WORKERS_SKIP_LEGACY_MIGRATION", "true")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 90*time.Minute, b.configs[0].App.TokenDuration.Std())
	assert.Equal(t, "postgres://u:p@localhost/db", b.configs[0].Storage.DB.DSN)
	assert.True(t, b.configs[0].Workers.SkipLegacyMigration)
}

// TestWithEnv_Defaults verifies that envDefault values alone produce a valid
// configuration.
func TestWithEnv_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "recipes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://www.themealdb.com/api/json/v1/1", cfg.Adapter.MealDBURL)
	assert.Equal(t, PasswordHashingPlain, cfg.App.PasswordHashing)
	assert.Equal(t, "https://via.placeholder.com/150", cfg.App.DefaultPhotoURL)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration.Std())
	assert.False(t, cfg.Workers.SkipLegacyMigration)
}

func TestWithEnv_BadDurationSetsError(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileWithoutOverridingEnv(t *testing.T) {
	path := writeTempFile(t, "test.env", "APP_TOKEN_ISSUER=from-dotenv\nAPP_VERSION=dotenv-version\n")
	t.Setenv("APP_VERSION", "from-env")
	// Registers cleanup for a variable the .env file sets.
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "flag.db", "-a", "127.0.0.1:9000"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())
	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_LastPathWins(t *testing.T) {
	first := writeTempFile(t, "first.json", `{"app":{"token_issuer":"first"}}`)
	second := writeTempFile(t, "second.yaml", "app:\n  token_issuer: second\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.TokenIssuer)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: filepath.Join(t.TempDir(), "none.json")})
	b.withFile()
	assert.Error(t, b.err)
}

// TestBuild_FullChain verifies env, flags and file merge in priority order.
func TestBuild_FullChain(t *testing.T) {
	path := writeTempFile(t, "cfg.yml", "server:\n  request_timeout: 5s\napp:\n  password_hashing: bcrypt\n")
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-d", "flag.db", "-config", path}).
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout.Std())
	assert.Equal(t, PasswordHashingBcrypt, cfg.App.PasswordHashing)
}
