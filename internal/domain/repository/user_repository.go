package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	FindActiveByRole(ctx context.Context, role string) ([]entity.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
