package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"rentify-api/internal/infra/readstore"
	"rentify-api/internal/infra/repository"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/errs"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable closes the read-then-insert race in overlap checks: two
// concurrent requests for the same dates cannot both commit.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	rentalRepo      shared.RentalRepository
	listingRepo     shared.ListingRepository
	userRepo        shared.UserRepository
	idempotencyRepo shared.IdempotencyRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository(t.uow.q)
	}
	return t.rentalRepo
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.uow.q)
	}
	return t.listingRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	listingStore     *readstore.ListingReadStore
	rentalStore      *readstore.RentalReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) listings() *readstore.ListingReadStore {
	if r.listingStore == nil {
		r.listingStore = readstore.NewListingReadStore(r.uow.q, r.dbtx)
	}
	return r.listingStore
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	view, err := r.listings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return listingViewToSnapshot(view), nil
}

func (r *commandReads) ListingByIDLocked(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	view, err := r.listings().FindByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}
	return listingViewToSnapshot(view), nil
}

func (r *commandReads) RentalByID(ctx context.Context, id uuid.UUID) (*shared.RentalSnapshot, error) {
	if r.rentalStore == nil {
		r.rentalStore = readstore.NewRentalReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.rentalStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RentalSnapshot{
		ID:          view.ID,
		ListingID:   view.ListingID,
		RequesterID: view.RequesterID,
		StartDate:   view.StartDate,
		EndDate:     view.EndDate,
		Method:      view.Method,
		Status:      view.Status,
		TotalPrice:  view.TotalPrice,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}, nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key)
}

func listingViewToSnapshot(view *queries.ListingView) *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:              view.ID,
		OwnerID:         view.OwnerID,
		Title:           view.Title,
		Description:     view.Description,
		PricePerDay:     view.PricePerDay,
		MaxRentalDays:   int(view.MaxRentalDays),
		ParcelAvailable: view.ParcelAvailable,
		MeetupAvailable: view.MeetupAvailable,
		Status:          view.Status,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
}
