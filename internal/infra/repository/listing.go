package repository

import (
	"context"

	"rentify-api/internal/domain/listing"
	"rentify-api/internal/infra"
	"rentify-api/internal/infra/repository/converter"
	sqlc "rentify-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (uuid.UUID, error)
	UpdateListingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingStatusParams) error
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries *sqlc.Queries) *ListingRepository {
	return &ListingRepository{
		queries: queries,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error) {
	params := converter.ListingToCreateParams(l)

	id, err := r.queries.CreateListing(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}

	return id, nil
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status listing.Status) error {
	params := sqlc.UpdateListingStatusParams{
		ID:     id,
		Status: status.String(),
	}

	if err := r.queries.UpdateListingStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update listing status", err)
	}

	return nil
}
