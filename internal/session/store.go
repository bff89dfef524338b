package session

import (
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/yukikurage/blog/internal/config"
)

// Session store backends
const (
	StoreCookie = "cookie"
	StoreRedis  = "redis"
)

// redisPoolSize is the number of idle connections kept to Redis
const redisPoolSize = 10

// NewStore creates the session store selected by cfg.SessionStore
func NewStore(cfg *config.Config) (sessions.Store, error) {
	secret := []byte(cfg.SessionSecret)

	var store sessions.Store
	switch cfg.SessionStore {
	case StoreCookie, "":
		store = cookie.NewStore(secret)
	case StoreRedis:
		rs, err := redisStore.NewStore(
			redisPoolSize,
			"tcp",
			cfg.RedisHost+":"+cfg.RedisPort,
			cfg.RedisPassword,
			secret,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(SessionLifetime(cfg).Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(), // HTTPS only in release mode
		SameSite: 2,                  // SameSite=Lax
	})
	return store, nil
}

// SessionLifetime is the MaxAge of sessions without "remember me". Cookie
// sessions end with the browser. Redis deletes sessions saved with a MaxAge
// of zero, so they expire after cfg.SessionLifetime instead.
func SessionLifetime(cfg *config.Config) time.Duration {
	if cfg.SessionStore == StoreRedis {
		return cfg.SessionLifetime
	}
	return 0
}
