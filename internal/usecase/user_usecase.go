package usecase

import (
	"context"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	ListDoctors(ctx context.Context) (*dto.UserListResponse, error)
}

type userUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		log:      log,
		userRepo: userRepo,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpReadAllUsers); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// ListDoctors returns active doctor users. Front desk uses it to populate
// the assignment picker, so every authenticated role holds the grant.
func (u *userUsecase) ListDoctors(ctx context.Context) (*dto.UserListResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpReadDoctors); err != nil {
		return nil, err
	}

	doctors, err := u.userRepo.FindActiveByRole(ctx, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(doctors),
		Total: len(doctors),
	}, nil
}
