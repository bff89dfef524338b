package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/blog/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REMEMBER_DURATION", "")
	t.Setenv("POSTS_PER_PAGE", "")
	t.Setenv("SESSION_LIFETIME", "")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 30*24*time.Hour, cfg.RememberDuration)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, 20, cfg.PostsPerPage)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("REMEMBER_DURATION", "72h")
	t.Setenv("SESSION_LIFETIME", "2h")
	t.Setenv("POSTS_PER_PAGE", "5")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 72*time.Hour, cfg.RememberDuration)
	assert.Equal(t, 2*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, 5, cfg.PostsPerPage)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REMEMBER_DURATION", "forever")
	t.Setenv("POSTS_PER_PAGE", "many")

	cfg := Load()

	assert.Equal(t, 30*24*time.Hour, cfg.RememberDuration)
	assert.Equal(t, 20, cfg.PostsPerPage)
}

func TestLoad_RememberDurationIsCapped(t *testing.T) {
	t.Setenv("REMEMBER_DURATION", "8760h")

	cfg := Load()

	assert.Equal(t, constants.MaxRememberDuration, cfg.RememberDuration)
}
