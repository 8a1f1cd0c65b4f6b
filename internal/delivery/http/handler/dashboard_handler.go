package handler

import (
	"net/http"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetStats returns the aggregate counts for the caller's scope
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to view dashboard stats")
		default:
			response.InternalServerError(w, "Failed to get dashboard stats")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
