package usecase

import (
	"context"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewDashboardUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) DashboardUsecase {
	return &dashboardUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

// GetStats returns aggregate patient counts for the caller's scope. Staff
// roles get clinic-wide numbers, doctors get counts over their own
// assignments. Each variant is read from a single snapshot.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpReadDashboardStats); err != nil {
		return nil, err
	}

	switch actor.Role {
	case entity.RoleSuperAdmin, entity.RoleFrontDesk:
		counts, err := u.patientRepo.Counts(ctx)
		if err != nil {
			u.log.Warnf("Failed to aggregate patient counts: %+v", err)
			return nil, err
		}
		return &dto.DashboardStatsResponse{
			TotalPatients:      &counts.Total,
			RegisteredPatients: &counts.Registered,
			ConsultingPatients: counts.Consulting,
			CompletedPatients:  &counts.Completed,
		}, nil
	case entity.RoleDoctor:
		counts, err := u.patientRepo.CountsByDoctor(ctx, actor.ID)
		if err != nil {
			u.log.Warnf("Failed to aggregate doctor counts for %s: %+v", actor.ID, err)
			return nil, err
		}
		return &dto.DashboardStatsResponse{
			AssignedPatients:   &counts.Assigned,
			ConsultingPatients: counts.Consulting,
		}, nil
	default:
		return nil, authz.ErrForbidden
	}
}
