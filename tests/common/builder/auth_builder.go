//go:build unit || e2e

package builder

import (
	reqdto "rentify-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Nickname string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Nickname: "tester",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:    a.Email,
		Nickname: a.Nickname,
		Password: a.Password,
	}
}

// Fluent builder methods
func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithNickname(nickname string) *AuthBuilder {
	a.Nickname = nickname
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}
