package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "SERVICE_NAME", "PORT", "MONGO_URI", "MONGO_URL", "MONGO_DB",
		"SHUTDOWN_TIMEOUT_SECONDS", "API_SECRET", "CORS_ALLOWED_ORIGINS",
		"CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS", "UPLOAD_DIR",
		"UPLOAD_URL_PREFIX", "MAX_UPLOAD_BYTES", "LOGGER_LEVEL", "LOG_FILE",
		"MONGO_LEGACY_ID_LOOKUP",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "furns_portfolio", cfg.MongoDB)
	assert.True(t, cfg.LegacyIDLookup)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.True(t, cfg.CORS.AllowsAllOrigins())
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "/uploads", cfg.Upload.URLPrefix)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfigRequiresSecretOutsideDevelopment(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig()

	assert.EqualError(t, err, "API_SECRET is required")
}

func TestLoadConfigDevelopmentSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, developmentSecret, cfg.Auth.Secret)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_SECRET", "x")
	t.Setenv("MONGO_URL", "mongodb://legacy:27017")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://furns.example , ,https://admin.furns.example")
	t.Setenv("UPLOAD_URL_PREFIX", "media/")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://legacy:27017", cfg.MongoURI)
	assert.Equal(t, []string{"https://furns.example", "https://admin.furns.example"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowsAllOrigins())
	assert.Equal(t, "/media", cfg.Upload.URLPrefix)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
}

func TestMongoURIPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_SECRET", "x")
	t.Setenv("MONGO_URI", "mongodb://primary:27017")
	t.Setenv("MONGO_URL", "mongodb://legacy:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://primary:27017", cfg.MongoURI)
}

func TestLoadConfigDisablesLegacyIDLookup(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_SECRET", "x")
	t.Setenv("MONGO_LEGACY_ID_LOOKUP", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.LegacyIDLookup)
}

func TestLoadConfigRejectsInvalidOrigins(t *testing.T) {
	for _, origins := range []string{"localhost:3000", "https://furns.example,furns.example", "https://*.furns.example"} {
		t.Run(origins, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("API_SECRET", "x")
			t.Setenv("CORS_ALLOWED_ORIGINS", origins)

			_, err := LoadConfig()

			assert.ErrorContains(t, err, "invalid CORS origin")
		})
	}
}

func TestLoadConfigAcceptsWildcardOrigin(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_SECRET", "x")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.CORS.AllowsAllOrigins())
}
