package readstore

import (
	"context"
	"time"

	"rentify-api/internal/infra"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"
	"rentify-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	GetListingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	GetListingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Listings, error)
	GetListingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetListingsKeysetParams) ([]sqlc.Listings, error)
	GetListingsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	return rowToListingView(row), nil
}

// FindByIDForUpdate locks the listing row for the duration of the enclosing
// transaction. Only meaningful when db is a transaction.
func (r *ListingReadStore) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByIDForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}

	return rowToListingView(row), nil
}

func (r *ListingReadStore) FindAvailableFirstPage(ctx context.Context, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.GetListingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listings first page", err)
	}

	return rowsToListingViews(rows), nil
}

func (r *ListingReadStore) FindAvailableKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	params := sqlc.GetListingsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}

	rows, err := r.queries.GetListingsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listings keyset", err)
	}

	return rowsToListingViews(rows), nil
}

func (r *ListingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ListingView, error) {
	rows, err := r.queries.GetListingsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listings by owner", err)
	}

	return rowsToListingViews(rows), nil
}

func rowToListingView(row sqlc.Listings) *queries.ListingView {
	return &queries.ListingView{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Title:           row.Title,
		Description:     row.Description,
		PricePerDay:     row.PricePerDay,
		MaxRentalDays:   row.MaxRentalDays,
		ParcelAvailable: row.ParcelAvailable,
		MeetupAvailable: row.MeetupAvailable,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowsToListingViews(rows []sqlc.Listings) []*queries.ListingView {
	result := make([]*queries.ListingView, len(rows))
	for i, row := range rows {
		result[i] = rowToListingView(row)
	}
	return result
}
