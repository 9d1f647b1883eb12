package queries

import (
	"context"
	"time"

	"rentify-api/internal/infra"
	"rentify-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound = errs.New("listing not found")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

// ListingView represents read-optimized listing data
type ListingView struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PricePerDay     int64     `json:"price_per_day"`
	MaxRentalDays   int32     `json:"max_rental_days"`
	ParcelAvailable bool      `json:"parcel_available"`
	MeetupAvailable bool      `json:"meetup_available"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	FindAvailableFirstPage(ctx context.Context, limit int32) ([]*ListingView, error)
	FindAvailableKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ListingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListAvailable(ctx context.Context, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	repo ListingReadStore
}

func NewListingQueries(repo ListingReadStore) ListingQueries {
	return &listingQueriesImpl{repo: repo}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *listingQueriesImpl) ListAvailable(ctx context.Context, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ListingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindAvailableFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindAvailableKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
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

func (q *listingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error) {
	return q.repo.FindByOwner(ctx, ownerID)
}
