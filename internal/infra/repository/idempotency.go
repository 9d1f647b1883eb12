package repository

import (
	"context"
	"time"

	"rentify-api/internal/infra"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	MarkIdempotencyKeySucceeded(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkIdempotencyKeySucceededParams) error
	MarkIdempotencyKeyFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkIdempotencyKeyFailedParams) error
	DeleteStaleIdempotencyKeys(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries *sqlc.Queries) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
	}
}

// TryReserve claims the key for this request. It reports false when another
// request already holds the key (ON CONFLICT DO NOTHING inserted no row).
func (r *IdempotencyRepository) TryReserve(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, domain string) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:    key,
		Domain: domain,
	}

	affected, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve idempotency key", err)
	}

	return affected > 0, nil
}

func (r *IdempotencyRepository) MarkSucceeded(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, responseCode int, responseBody []byte, resultID uuid.UUID) error {
	params := sqlc.MarkIdempotencyKeySucceededParams{
		Key:          key,
		ResponseCode: pgconv.IntToPgtypeInt4(responseCode),
		ResponseBody: responseBody,
		ResultID:     pgconv.UUIDToPgtype(resultID),
	}

	if err := r.queries.MarkIdempotencyKeySucceeded(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark idempotency key succeeded", err)
	}

	return nil
}

func (r *IdempotencyRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, responseCode int, responseBody []byte) error {
	params := sqlc.MarkIdempotencyKeyFailedParams{
		Key:          key,
		ResponseCode: pgconv.IntToPgtypeInt4(responseCode),
		ResponseBody: responseBody,
	}

	if err := r.queries.MarkIdempotencyKeyFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark idempotency key failed", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteStale(ctx context.Context, tx sqlc.DBTX, olderThan time.Time) (int64, error) {
	count, err := r.queries.DeleteStaleIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(olderThan))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete stale idempotency keys", err)
	}

	return count, nil
}
