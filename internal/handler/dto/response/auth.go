package response

import (
	"rentify-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type SignupResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Nickname string    `json:"nickname"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		Nickname: v.Nickname,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
