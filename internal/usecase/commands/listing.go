package commands

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	reqdto "rentify-api/internal/handler/dto/request"
	"rentify-api/internal/pkg/errs"
	"rentify-api/internal/pkg/pgconv"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"
)

var ErrListingValidation = errs.New("listing validation error")

type CreateListingResult struct {
	ListingID  uuid.UUID
	Code       int
	Body       []byte
	IsReplayed bool
}

type ListingCommands interface {
	CreateListing(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateListingRequest, idempotencyKey uuid.UUID) (*CreateListingResult, error)
}

type listingCommandsImpl struct {
	gateway IdempotentGateway
}

func NewListingCommands(gateway IdempotentGateway) ListingCommands {
	return &listingCommandsImpl{gateway: gateway}
}

// CreateListing is gated on the idempotency key so a retried request never
// publishes the same listing twice.
func (l *listingCommandsImpl) CreateListing(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateListingRequest, idempotencyKey uuid.UUID) (*CreateListingResult, error) {
	entity, err := req.ToDomain(ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrListingValidation)
	}

	result, err := l.gateway.Execute(ctx, idempotencyKey, DomainListing, func(ctx context.Context, tx shared.Tx) (*OperationResult, error) {
		listingID, createErr := tx.Listings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		body, marshalErr := json.Marshal(queries.ListingView{
			ID:              listingID,
			OwnerID:         ownerID,
			Title:           entity.Title().Value(),
			Description:     entity.Description(),
			PricePerDay:     entity.Terms().PricePerDay(),
			MaxRentalDays:   pgconv.IntToInt32(entity.Terms().MaxRentalDays()),
			ParcelAvailable: entity.ParcelAvailable(),
			MeetupAvailable: entity.MeetupAvailable(),
			Status:          entity.Status().String(),
		})
		if marshalErr != nil {
			return nil, errs.Mark(marshalErr, ErrDatabaseOperationFailed)
		}

		return &OperationResult{
			Code:     http.StatusCreated,
			Body:     body,
			ResultID: listingID,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateListingResult{
		ListingID:  result.ResultID,
		Code:       result.Code,
		Body:       result.Body,
		IsReplayed: result.IsReplayed,
	}, nil
}
