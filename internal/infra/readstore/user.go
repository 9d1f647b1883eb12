package readstore

import (
	"context"

	"rentify-api/internal/infra"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"
	"rentify-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries *sqlc.Queries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return rowToAuthorizedUserView(row), nil
}

// FindByEmail returns the view together with the password hash so the caller
// can verify credentials without a second query.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return rowToAuthorizedUserView(row), row.PasswordHash, nil
}

func rowToAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Nickname: row.Nickname,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
