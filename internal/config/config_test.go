package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "ENVIRONMENT", "FEED_CACHE_TTL", "MINIO_BUCKET", "LOG_LEVEL", "MINIO_ENDPOINT", "MINIO_PUBLIC_ENDPOINT"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 5*time.Minute, cfg.FeedCacheTTL)
		assert.Equal(t, "partnerup-resumes", cfg.MinIOBucket)
		assert.Equal(t, "localhost:9000", cfg.MinIOPublicEndpoint)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("FEED_CACHE_TTL", "30s")
		t.Setenv("MINIO_USE_SSL", "true")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 30*time.Second, cfg.FeedCacheTTL)
		assert.True(t, cfg.MinIOUseSSL)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("FEED_CACHE_TTL", "soon")
		t.Setenv("MINIO_USE_SSL", "maybe")

		cfg := Load()

		assert.Equal(t, 5*time.Minute, cfg.FeedCacheTTL)
		assert.False(t, cfg.MinIOUseSSL)
	})
}

func TestPublicObjectURL(t *testing.T) {
	cfg := &Config{MinIOPublicEndpoint: "cdn.example.com", MinIOBucket: "resumes", MinIOPublicUseSSL: true}
	assert.Equal(t, "https://cdn.example.com/resumes/a/b.pdf", cfg.PublicObjectURL("a/b.pdf"))

	cfg.MinIOPublicUseSSL = false
	assert.Equal(t, "http://cdn.example.com/resumes/a/b.pdf", cfg.PublicObjectURL("a/b.pdf"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("DB_MAX_IDLE_CONNS", "-1")

	cfg := Load()

	assert.Equal(t, 40, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}

func TestResumeReadPolicy(t *testing.T) {
	policy, err := resumeReadPolicy("partnerup-resumes")
	assert.NoError(t, err)
	assert.Contains(t, policy, `"arn:aws:s3:::partnerup-resumes/resumes/*"`)
	assert.Contains(t, policy, `"s3:GetObject"`)
	assert.NotContains(t, policy, "s3:PutObject")
}
