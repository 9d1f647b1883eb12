package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"rentify-api/internal/domain/user"
	reqdto "rentify-api/internal/handler/dto/request"
	"rentify-api/internal/infra"
	"rentify-api/internal/pkg/errs"
	"rentify-api/internal/pkg/jwt"
	"rentify-api/internal/pkg/password"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrDuplicateEmail       = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrUserValidation       = errs.New("user validation error")
)

type SignupResult struct {
	UserID     uuid.UUID
	Code       int
	Body       []byte
	IsReplayed bool
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest, idempotencyKey uuid.UUID) (*SignupResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	gateway    IdempotentGateway
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(gateway IdempotentGateway, uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		gateway:    gateway,
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// Signup is gated on the idempotency key: retrying with the same key replays
// the original response instead of reporting a duplicate email.
func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest, idempotencyKey uuid.UUID) (*SignupResult, error) {
	userEntity, err := buildUser(req)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	result, err := a.gateway.Execute(ctx, idempotencyKey, DomainUser, func(ctx context.Context, tx shared.Tx) (*OperationResult, error) {
		userID, createErr := tx.Users().Create(ctx, tx.DB(), userEntity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return nil, ErrDuplicateEmail
			}
			return nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		body, marshalErr := json.Marshal(queries.AuthorizedUserView{
			ID:       userID,
			Email:    userEntity.Email().Value(),
			Nickname: userEntity.Nickname().Value(),
			Role:     userEntity.Role().String(),
			IsActive: userEntity.IsActive(),
		})
		if marshalErr != nil {
			return nil, errs.Mark(marshalErr, ErrDatabaseOperationFailed)
		}

		return &OperationResult{
			Code:     http.StatusCreated,
			Body:     body,
			ResultID: userID,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &SignupResult{
		UserID:     result.ResultID,
		Code:       result.Code,
		Body:       result.Body,
		IsReplayed: result.IsReplayed,
	}, nil
}

func buildUser(req reqdto.SignupRequest) (*user.User, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	nickname, err := user.NewNickname(req.Nickname)
	if err != nil {
		return nil, err
	}

	rawPassword, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(rawPassword.Value())
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, nickname, hash, user.RoleMember), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
		if updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
		// Continue without failing - login was successful, only last_login update failed
	}

	return &LoginResult{
		UserID: userReadModel.ID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken, jwt.RefreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
