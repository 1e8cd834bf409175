package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenBlacklist holds revoked tokens until their own expiry. Logout
// is the only way a stateless JWT gets invalidated before it expires.
type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance; nil when Redis is not configured,
// in which case logout only discards tokens client-side.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a new Redis-backed token blacklist
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistTokens adds both access and refresh tokens to the blacklist.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return nil
	}
	if err := TokenBlacklist.blacklistSingleToken(accessToken); err != nil {
		return fmt.Errorf("failed to blacklist access token: %w", err)
	}
	if refreshToken != "" {
		if err := TokenBlacklist.blacklistSingleToken(refreshToken); err != nil {
			return fmt.Errorf("failed to blacklist refresh token: %w", err)
		}
	}
	return nil
}

// IsTokenBlacklisted reports whether the token has been revoked. Without a
// configured blacklist every token is considered live.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(tokenString)).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

// blacklistSingleToken stores the token until its own expiration, so the
// blacklist never outlives the tokens it revokes.
func (tb *RedisTokenBlacklist) blacklistSingleToken(tokenString string) error {
	claims, err := ParseToken(tokenString)
	if err != nil {
		// Expired or malformed tokens need no blacklisting.
		return nil
	}

	ttl := time.Hour
	if exp, ok := claims["exp"].(float64); ok {
		until := time.Until(time.Unix(int64(exp), 0))
		if until <= 0 {
			return nil
		}
		ttl = until
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return tb.Client.Set(ctx, blacklistKey(tokenString), "revoked", ttl).Err()
}

func blacklistKey(tokenString string) string {
	return "blacklist:" + tokenString
}
