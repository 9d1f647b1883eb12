package repository

import (
	"context"

	"rentify-api/internal/domain/user"
	"rentify-api/internal/infra"
	"rentify-api/internal/infra/repository/converter"
	sqlc "rentify-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries *sqlc.Queries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	params := converter.UserToCreateParams(u)

	id, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
