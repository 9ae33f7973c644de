package converter

import (
	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/entity"
)

// UserToResponse dumps the user row as stored, hash included.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
	}
}
