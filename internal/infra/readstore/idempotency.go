package readstore

import (
	"context"

	"rentify-api/internal/infra"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"
	"rentify-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries *sqlc.Queries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:          row.Key,
		Domain:       row.Domain,
		Status:       row.Status,
		ResponseCode: pgconv.Int32PtrFromPgtype(row.ResponseCode),
		ResponseBody: row.ResponseBody,
		ResultID:     pgconv.UUIDPtrFromPgtype(row.ResultID),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
