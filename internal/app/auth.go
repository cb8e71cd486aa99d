// internal/app/auth.go
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// IdentityProvider resolves the acting user for a request. Sessions are
// issued elsewhere; this side only reads them.
type IdentityProvider interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type Auth struct {
	enabled     bool
	redis       *redis.Client
	keyTemplate string
	tokenHeader string
}

func NewAuth(config *Config) (*Auth, error) {
	if !config.Server.EnableAuth {
		return &Auth{enabled: false}, nil
	}

	opt, err := redis.ParseURL(config.Auth.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Auth{
		enabled:     true,
		redis:       client,
		keyTemplate: config.Auth.SessionKeyTemplate,
		tokenHeader: config.Auth.TokenHeader,
	}, nil
}

func (a *Auth) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func (a *Auth) TokenHeader() string {
	return a.tokenHeader
}

// CurrentUser maps a bearer token to the stored session hash. With auth
// disabled every request acts as a local admin; dev setups only.
func (a *Auth) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if !a.enabled {
		return &models.User{ID: 0, Name: "dev-admin", Role: models.RoleAdmin}, nil
	}

	key := strings.NewReplacer("{token}", token).Replace(a.keyTemplate)

	fields, err := a.redis.HGetAll(ctx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Debug.Printf("Redis error: %v", err)
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if err == redis.Nil || len(fields) == 0 {
		logger.Debug.Printf("Session not found for key: %s", key)
		return nil, fmt.Errorf("session not found")
	}

	id, err := strconv.ParseInt(fields["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id in session %s: %w", key, err)
	}

	role := models.Role(fields["role"])
	if role != models.RoleAdmin && role != models.RoleInterviewAdmin {
		return nil, fmt.Errorf("invalid role %q in session %s", fields["role"], key)
	}

	return &models.User{
		ID:   id,
		Name: fields["name"],
		Role: role,
	}, nil
}
