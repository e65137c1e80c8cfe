package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "0123456789abcdef0123"

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsOnly verifies that defaults plus a sign key form a valid
// config with the documented default values.
func TestBuild_DefaultsOnly(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{TokenSignKey: testSignKey}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.Equal(t, "/api/v1", cfg.App.APIPrefix())
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 10, cfg.Auth.SaltRounds)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
	assert.Equal(t, 20, cfg.RateLimit.CriticalLimit)
	assert.Equal(t, 5, cfg.RateLimit.DelayAfter)
	assert.Equal(t, 100*time.Millisecond, cfg.RateLimit.DelayStep)
	assert.Equal(t, []string{"127.0.0.1", "::1"}, cfg.RateLimit.SkipIPs)
	assert.Equal(t, time.Minute, cfg.Workers.LimiterSweepInterval)
	assert.Equal(t, 15*time.Second, cfg.Workers.HealthProbeInterval)
}

// TestBuild_FirstSourceWins verifies that earlier sources take precedence
// over later ones for non-zero fields.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:7000"}, Auth: Auth{TokenSignKey: testSignKey}},
	)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, testSignKey, cfg.Auth.TokenSignKey)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "short sign key", mutate: func(c *StructuredConfig) { c.Auth.TokenSignKey = "short" }, wantErr: true},
		{name: "unknown env", mutate: func(c *StructuredConfig) { c.App.Env = "staging" }, wantErr: true},
		{name: "non numeric api version", mutate: func(c *StructuredConfig) { c.App.APIVersion = "v1" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mongo" }, wantErr: true},
		{name: "postgres without dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = DriverPostgres }, wantErr: true},
		{
			name: "postgres with dsn",
			mutate: func(c *StructuredConfig) {
				c.Storage.DB.Driver = DriverPostgres
				c.Storage.DB.DSN = "postgres://localhost/db"
			},
		},
		{name: "salt rounds too high", mutate: func(c *StructuredConfig) { c.Auth.SaltRounds = 32 }, wantErr: true},
		{name: "bad skip ip", mutate: func(c *StructuredConfig) { c.RateLimit.SkipIPs = []string{"nope"} }, wantErr: true},
		{name: "trusted proxy cidr", mutate: func(c *StructuredConfig) { c.Server.TrustedProxies = []string{"10.0.0.0/8", "::1"} }},
		{name: "bad trusted proxy", mutate: func(c *StructuredConfig) { c.Server.TrustedProxies = []string{"proxy.local"} }, wantErr: true},
		{name: "token duration below one second", mutate: func(c *StructuredConfig) { c.Auth.TokenDuration = 500 * time.Millisecond }, wantErr: true},
		{name: "token duration of one second", mutate: func(c *StructuredConfig) { c.Auth.TokenDuration = time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Auth.TokenSignKey = testSignKey
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── LoadStructuredConfig ──────────────────────────────────────────────────────

// TestLoadStructuredConfig_Precedence verifies env > flags > JSON > defaults.
func TestLoadStructuredConfig_Precedence(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"env": "test", "log_level": "warn"},
		"auth":   map[string]any{"token_sign_key": testSignKey, "token_duration": "2h"},
		"server": map[string]any{"http_address": "localhost:7000"},
	})

	t.Setenv("SERVER_ADDRESS", "localhost:9000")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := LoadStructuredConfig([]string{"-a", "localhost:8000", "-c", path, "-env", "development"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress, "env beats flags")
	assert.Equal(t, EnvDevelopment, cfg.App.Env, "flags beat JSON")
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration, "JSON beats defaults")
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout, "defaults fill the rest")
	assert.True(t, cfg.App.IsDevelopment())
}

// TestLoadStructuredConfig_MissingJSON verifies that an unreadable JSON file
// aborts loading.
func TestLoadStructuredConfig_MissingJSON(t *testing.T) {
	cfg, err := LoadStructuredConfig([]string{"-c", "/does/not/exist.json"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// TestLoadStructuredConfig_BadFlag verifies that an unknown flag aborts
// loading.
func TestLoadStructuredConfig_BadFlag(t *testing.T) {
	cfg, err := LoadStructuredConfig([]string{"-unknown"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
