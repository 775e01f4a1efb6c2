package service

import (
	"context"
	"fmt"
	"time"

	"clinic-appointment-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TokenService keeps the Redis allow-list of issued JWT ids. A token that is
// not present has been revoked (or expired) and must be rejected even if its
// signature still verifies.
type TokenService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewTokenService(redisClient *redis.Client, log *logrus.Logger) *TokenService {
	return &TokenService{
		redisClient: redisClient,
		log:         log,
	}
}

func tokenKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, userID.String(), tokenID)
}

// Store registers a freshly issued token id until its expiry.
func (s *TokenService) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err()
}

// IsValid reports whether the token id is still on the allow-list.
func (s *TokenService) IsValid(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Revoke drops a single token id.
func (s *TokenService) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	return s.redisClient.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err()
}

// RevokeAll drops every token for a user, both access and refresh. Used when
// an account is deleted.
func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := fmt.Sprintf("%s_token:%s:*", tokenType, userID.String())
		keys, err := s.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			s.log.Warnf("Failed to list %s tokens for user %s: %+v", tokenType, userID, err)
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s tokens for user %s: %+v", tokenType, userID, err)
				return err
			}
		}
	}
	return nil
}
