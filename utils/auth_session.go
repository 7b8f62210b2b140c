package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSession is the cached authenticated principal, keyed by token hash.
type AuthSession struct {
	PrincipalID string    `json:"principalId"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SaveAuthSession caches the principal for a token hash with a TTL.
func SaveAuthSession(client *redis.Client, tokenHash string, session AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+tokenHash, data, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the cached principal for a token hash.
func GetAuthSession(client *redis.Client, tokenHash string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a cached principal (token revocation).
func DeleteAuthSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+tokenHash).Err()
}
