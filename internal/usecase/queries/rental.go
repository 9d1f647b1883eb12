package queries

import (
	"context"
	"time"

	"rentify-api/internal/infra"
	"rentify-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound = errs.New("rental not found")
	ErrRentalAccess   = errs.New("rental access denied")
)

// RentalView represents read-optimized rental data joined with its listing.
type RentalView struct {
	ID                uuid.UUID `json:"id"`
	ListingID         uuid.UUID `json:"listing_id"`
	ListingTitle      string    `json:"listing_title"`
	OwnerID           uuid.UUID `json:"owner_id"`
	RequesterID       uuid.UUID `json:"requester_id"`
	RequesterNickname string    `json:"requester_nickname"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	TotalPrice        int64     `json:"total_price"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RentalListItem struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type OwnerRentalListItem struct {
	ID                uuid.UUID `json:"id"`
	ListingID         uuid.UUID `json:"listing_id"`
	ListingTitle      string    `json:"listing_title"`
	RequesterID       uuid.UUID `json:"requester_id"`
	RequesterNickname string    `json:"requester_nickname"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	TotalPrice        int64     `json:"total_price"`
	CreatedAt         time.Time `json:"created_at"`
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindByRequesterFirstPage(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*RentalListItem, error)
	FindByRequesterKeyset(ctx context.Context, requesterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RentalListItem, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*OwnerRentalListItem, error)
}

type RentalQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*RentalView, error)
	// GetByIDSystem bypasses access checks for internal reads such as idempotent replay.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, cursor *Cursor, limit int) ([]*RentalListItem, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*OwnerRentalListItem, error)
}

type rentalQueriesImpl struct {
	repo RentalReadStore
}

func NewRentalQueries(repo RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{repo: repo}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*RentalView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the two parties of the rental (and admins) may see it.
	if actorRole != RoleAdmin && actorID != view.RequesterID && actorID != view.OwnerID {
		return nil, ErrRentalAccess
	}

	return view, nil
}

func (q *rentalQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, cursor *Cursor, limit int) ([]*RentalListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*RentalListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByRequesterFirstPage(ctx, requesterID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByRequesterKeyset(ctx, requesterID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *rentalQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*OwnerRentalListItem, error) {
	limit = ValidateLimit(limit)
	return q.repo.FindByOwner(ctx, ownerID, int32(limit))
}
