package converter

import (
	"rentify-api/internal/domain/user"
	sqlc "rentify-api/internal/infra/sqlc/generated"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Nickname:     u.Nickname().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
}
