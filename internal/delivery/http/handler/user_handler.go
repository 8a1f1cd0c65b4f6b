package handler

import (
	"net/http"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// ListUsers returns every user account (super admin)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Only super admin can view all users")
		default:
			response.InternalServerError(w, "Failed to list users")
		}
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// ListDoctors returns the active doctors
func (h *UserHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.userUsecase.ListDoctors(r.Context())
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to list doctors")
		default:
			response.InternalServerError(w, "Failed to list doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
