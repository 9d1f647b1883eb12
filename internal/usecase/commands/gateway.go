package commands

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"rentify-api/internal/infra"
	"rentify-api/internal/pkg/clock"
	"rentify-api/internal/pkg/errs"
	"rentify-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Idempotency domains partition the key space per write route. A key reused
// across domains is rejected rather than silently replayed.
const (
	DomainUser    = "user"
	DomainListing = "listing"
)

var (
	ErrRequestInProgress       = errs.New("request with this idempotency key is in progress")
	ErrKeyDomainConflict       = errs.New("idempotency key already used for another operation")
	ErrRequestFailedBefore     = errs.New("request with this idempotency key already failed")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// OperationResult is what a gated operation produces on success. Code and Body
// are stored verbatim on the key so replays can return the original response.
type OperationResult struct {
	Code     int
	Body     []byte
	ResultID uuid.UUID
}

type GatewayResult struct {
	Code       int
	Body       []byte
	ResultID   uuid.UUID
	IsReplayed bool
}

// IdempotentGateway wraps a write operation so that at most one execution per
// key ever commits. Claiming the key and running the operation happen in
// separate transactions: the claim must survive an operation rollback.
type IdempotentGateway interface {
	Execute(ctx context.Context, key uuid.UUID, domain string, op func(ctx context.Context, tx shared.Tx) (*OperationResult, error)) (*GatewayResult, error)
}

type idempotentGatewayImpl struct {
	uow shared.UnitOfWork
}

func NewIdempotentGateway(uow shared.UnitOfWork) IdempotentGateway {
	return &idempotentGatewayImpl{uow: uow}
}

func (g *idempotentGatewayImpl) Execute(
	ctx context.Context,
	key uuid.UUID,
	domain string,
	op func(ctx context.Context, tx shared.Tx) (*OperationResult, error),
) (*GatewayResult, error) {
	claimed, err := g.claimKey(ctx, key, domain)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return g.replay(ctx, key, domain)
	}

	var result *OperationResult
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var opErr error
		result, opErr = op(ctx, tx)
		if opErr != nil {
			return opErr
		}
		return tx.Idempotency().MarkSucceeded(ctx, tx.DB(), key, result.Code, result.Body, result.ResultID)
	})
	if err != nil {
		g.recordFailure(ctx, key)
		return nil, err
	}

	return &GatewayResult{
		Code:       result.Code,
		Body:       result.Body,
		ResultID:   result.ResultID,
		IsReplayed: false,
	}, nil
}

func (g *idempotentGatewayImpl) claimKey(ctx context.Context, key uuid.UUID, domain string) (bool, error) {
	var claimed bool
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var insErr error
		claimed, insErr = tx.Idempotency().TryReserve(ctx, tx.DB(), key, domain)
		return insErr
	})
	if err != nil {
		return false, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	return claimed, nil
}

func (g *idempotentGatewayImpl) replay(ctx context.Context, key uuid.UUID, domain string) (*GatewayResult, error) {
	record, err := g.uow.CommandReads().IdempotencyByKey(ctx, key)
	if err != nil {
		// The key existed a moment ago; treat a vanished row as a stale
		// claim raced with the sweeper.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestInProgress
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if record.Domain != domain {
		return nil, ErrKeyDomainConflict
	}

	switch record.Status {
	case "success":
		code := http.StatusOK
		if record.ResponseCode != nil {
			code = int(*record.ResponseCode)
		}
		result := &GatewayResult{
			Code:       code,
			Body:       record.ResponseBody,
			IsReplayed: true,
		}
		if record.ResultID != nil {
			result.ResultID = *record.ResultID
		}
		return result, nil

	case "failed":
		return nil, ErrRequestFailedBefore

	case "pending":
		return nil, ErrRequestInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// recordFailure runs in its own transaction because the operation's
// transaction has already rolled back. A key stuck in pending after a marking
// failure is eventually purged by the sweeper.
func (g *idempotentGatewayImpl) recordFailure(ctx context.Context, key uuid.UUID) {
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().MarkFailed(ctx, tx.DB(), key, http.StatusUnprocessableEntity, nil)
	})
	if err != nil {
		slog.Warn("failed to mark idempotency key failed", "key", key, "error", err.Error())
	}
}

// StaleKeySweeper purges idempotency keys that have outlived their TTL so
// abandoned pending claims and old failures do not block their keys forever.
// Succeeded records are kept so late retries still replay the stored response.
type StaleKeySweeper struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewStaleKeySweeper(uow shared.UnitOfWork, clk clock.Clock, ttl time.Duration) *StaleKeySweeper {
	return &StaleKeySweeper{
		uow:   uow,
		clock: clk,
		ttl:   ttl,
	}
}

func (s *StaleKeySweeper) SweepOnce(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.ttl)

	var deleted int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var delErr error
		deleted, delErr = tx.Idempotency().DeleteStale(ctx, tx.DB(), cutoff)
		return delErr
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return deleted, nil
}

func (s *StaleKeySweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.SweepOnce(ctx)
			if err != nil {
				slog.Warn("idempotency sweep failed", "error", err.Error())
				continue
			}
			if deleted > 0 {
				slog.Info("purged stale idempotency keys", "count", deleted)
			}
		}
	}
}
