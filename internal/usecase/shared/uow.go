package shared

import (
	"context"
	"time"

	"rentify-api/internal/domain/listing"
	"rentify-api/internal/domain/rental"
	"rentify-api/internal/domain/user"
	sqlc "rentify-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for operations whose
	// correctness depends on phantom-free reads (rental overlap checks).
	// Serialization failures are retried like deadlocks.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Listings() ListingRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	// ListingByIDLocked takes a row lock; only meaningful inside a transaction.
	ListingByIDLocked(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	RentalByID(ctx context.Context, id uuid.UUID) (*RentalSnapshot, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type RentalRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rent *rental.Rental) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status rental.Status) error
	CountOverlapping(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, period rental.Period) (int64, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status listing.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type IdempotencyRepository interface {
	TryReserve(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, domain string) (bool, error)
	MarkSucceeded(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, responseCode int, responseBody []byte, resultID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, responseCode int, responseBody []byte) error
	DeleteStale(ctx context.Context, tx sqlc.DBTX, olderThan time.Time) (int64, error)
}
