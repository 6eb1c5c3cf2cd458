package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The role name
// comes from the preloaded Role, or from the seeded ids when it is absent.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleNameByID(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
