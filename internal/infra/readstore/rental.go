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

type RentalViewQueries interface {
	GetRentalViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRentalViewByIDRow, error)
	GetRentalByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rentals, error)
	GetRentalsByRequesterFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRentalsByRequesterFirstPageParams) ([]sqlc.GetRentalsByRequesterFirstPageRow, error)
	GetRentalsByRequesterKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRentalsByRequesterKeysetParams) ([]sqlc.GetRentalsByRequesterKeysetRow, error)
	GetRentalsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRentalsByOwnerParams) ([]sqlc.GetRentalsByOwnerRow, error)
}

type RentalReadStore struct {
	queries RentalViewQueries
	db      sqlc.DBTX
}

func NewRentalReadStore(queries *sqlc.Queries, db sqlc.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row, err := r.queries.GetRentalViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}

	return rowToRentalView(row), nil
}

func (r *RentalReadStore) FindByRequesterFirstPage(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*queries.RentalListItem, error) {
	params := sqlc.GetRentalsByRequesterFirstPageParams{
		RequesterID: requesterID,
		Limit:       limit,
	}

	rows, err := r.queries.GetRentalsByRequesterFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals first page", err)
	}

	result := make([]*queries.RentalListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.RentalListItem{
			ID:           row.ID,
			ListingID:    row.ListingID,
			ListingTitle: row.ListingTitle,
			StartDate:    pgconv.DateFromPgtype(row.StartDate),
			EndDate:      pgconv.DateFromPgtype(row.EndDate),
			Method:       row.Method,
			Status:       row.Status,
			TotalPrice:   row.TotalPrice,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *RentalReadStore) FindByRequesterKeyset(ctx context.Context, requesterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RentalListItem, error) {
	params := sqlc.GetRentalsByRequesterKeysetParams{
		RequesterID: requesterID,
		CreatedAt:   pgconv.TimeToPgtype(lastCreatedAt),
		ID:          lastID,
		Limit:       limit,
	}

	rows, err := r.queries.GetRentalsByRequesterKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals keyset", err)
	}

	result := make([]*queries.RentalListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.RentalListItem{
			ID:           row.ID,
			ListingID:    row.ListingID,
			ListingTitle: row.ListingTitle,
			StartDate:    pgconv.DateFromPgtype(row.StartDate),
			EndDate:      pgconv.DateFromPgtype(row.EndDate),
			Method:       row.Method,
			Status:       row.Status,
			TotalPrice:   row.TotalPrice,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *RentalReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.OwnerRentalListItem, error) {
	params := sqlc.GetRentalsByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
	}

	rows, err := r.queries.GetRentalsByOwner(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals by owner", err)
	}

	result := make([]*queries.OwnerRentalListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.OwnerRentalListItem{
			ID:                row.ID,
			ListingID:         row.ListingID,
			ListingTitle:      row.ListingTitle,
			RequesterID:       row.RequesterID,
			RequesterNickname: row.RequesterNickname,
			StartDate:         pgconv.DateFromPgtype(row.StartDate),
			EndDate:           pgconv.DateFromPgtype(row.EndDate),
			Method:            row.Method,
			Status:            row.Status,
			TotalPrice:        row.TotalPrice,
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func rowToRentalView(row sqlc.GetRentalViewByIDRow) *queries.RentalView {
	return &queries.RentalView{
		ID:                row.ID,
		ListingID:         row.ListingID,
		ListingTitle:      row.ListingTitle,
		OwnerID:           row.OwnerID,
		RequesterID:       row.RequesterID,
		RequesterNickname: row.RequesterNickname,
		StartDate:         pgconv.DateFromPgtype(row.StartDate),
		EndDate:           pgconv.DateFromPgtype(row.EndDate),
		Method:            row.Method,
		Status:            row.Status,
		TotalPrice:        row.TotalPrice,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
