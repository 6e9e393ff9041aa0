package config

import (
	"context"
	"os"
)

// Secret names used in production deployments
const (
	secretDatabaseURL = "neon-database-connection-string"
	secretRedisURL    = "upstash-redis-url"
	secretRedisToken  = "upstash-redis-token"
)

// DatabaseURL resolves the Postgres connection string.
// DATABASE_URL_DEV is checked first for local development.
func DatabaseURL(ctx context.Context) (string, error) {
	return secretOrEnv(ctx, "DATABASE_URL_DEV", secretDatabaseURL, os.LookupEnv)
}

// RedisCredentials resolves the cache endpoint URL and auth token.
// Both are optional at runtime: callers fall back to an in-process cache
// when the URL cannot be resolved.
func RedisCredentials(ctx context.Context) (url string, token string, err error) {
	url, err = secretOrEnv(ctx, "UPSTASH_REDIS_URL", secretRedisURL, os.LookupEnv)
	if err != nil {
		return "", "", err
	}

	token, err = secretOrEnv(ctx, "UPSTASH_REDIS_TOKEN", secretRedisToken, os.LookupEnv)
	if err != nil {
		return "", "", err
	}

	return url, token, nil
}
