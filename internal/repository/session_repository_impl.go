package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("session:%s:%s", userID.String(), tokenID)
}

func (r *sessionRepository) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(userID, tokenID), "valid", ttl).Err()
}

func (r *sessionRepository) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := r.client.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID uuid.UUID, tokenID string) error {
	// DEL on a missing key is a no-op, which keeps logout idempotent.
	return r.client.Del(ctx, sessionKey(userID, tokenID)).Err()
}
