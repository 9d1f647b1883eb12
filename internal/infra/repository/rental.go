package repository

import (
	"context"

	"rentify-api/internal/domain/rental"
	"rentify-api/internal/infra"
	"rentify-api/internal/infra/repository/converter"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RentalWriteQueries interface {
	CreateRental(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRentalParams) (uuid.UUID, error)
	UpdateRentalStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRentalStatusParams) error
	CountOverlappingRentals(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingRentalsParams) (int64, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
}

func NewRentalRepository(queries *sqlc.Queries) *RentalRepository {
	return &RentalRepository{
		queries: queries,
	}
}

func (r *RentalRepository) Create(ctx context.Context, tx sqlc.DBTX, rent *rental.Rental) (uuid.UUID, error) {
	params := converter.RentalToCreateParams(rent)

	id, err := r.queries.CreateRental(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rental", err)
	}

	return id, nil
}

func (r *RentalRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status rental.Status) error {
	params := sqlc.UpdateRentalStatusParams{
		ID:     id,
		Status: status.String(),
	}

	if err := r.queries.UpdateRentalStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update rental status", err)
	}

	return nil
}

// CountOverlapping counts blocking rentals colliding with the period using the
// closed-interval test (start <= period.end AND end >= period.start).
func (r *RentalRepository) CountOverlapping(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, period rental.Period) (int64, error) {
	params := sqlc.CountOverlappingRentalsParams{
		ListingID: listingID,
		EndDate:   pgconv.DateToPgtype(period.End()),
		StartDate: pgconv.DateToPgtype(period.Start()),
	}

	count, err := r.queries.CountOverlappingRentals(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping rentals", err)
	}

	return count, nil
}
