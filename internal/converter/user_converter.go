package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password
// hash never leaves the entity layer.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponses(users []entity.User) []*dto.UserResponse {
	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return responses
}
