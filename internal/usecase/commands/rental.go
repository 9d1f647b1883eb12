package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rentify-api/internal/domain/listing"
	"rentify-api/internal/domain/rental"
	reqdto "rentify-api/internal/handler/dto/request"
	"rentify-api/internal/pkg/errs"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"
)

var (
	ErrListingNotFound         = errs.New("listing not found")
	ErrRentalNotFound          = errs.New("rental not found")
	ErrOwnListingRental        = errs.New("cannot rent own listing")
	ErrListingNotAvailable     = errs.New("listing is not available")
	ErrStartDateNotFuture      = errs.New("start date must be in the future")
	ErrInvalidRentalPeriod     = errs.New("invalid rental period")
	ErrMaxRentalDaysExceeded   = errs.New("rental period exceeds the maximum")
	ErrFulfillmentNotSupported = errs.New("fulfillment method not supported by listing")
	ErrPeriodOverlap           = errs.New("rental period overlaps an existing rental")
	ErrRentalNotOwned          = errs.New("actor is not a party of this rental")
	ErrInvalidTransition       = errs.New("invalid rental status transition")
	ErrCancelWindowClosed      = errs.New("cancellation window has closed")
	ErrRentalValidation        = errs.New("rental validation error")
)

type RentalCommands interface {
	CreateRental(ctx context.Context, requesterID uuid.UUID, req reqdto.CreateRentalRequest) (*queries.RentalView, error)
	ConfirmRental(ctx context.Context, actorID, rentalID uuid.UUID) error
	CancelRental(ctx context.Context, actorID, rentalID uuid.UUID) error
}

type rentalCommandsImpl struct {
	uow           shared.UnitOfWork
	factory       *rental.Factory
	rentalQueries queries.RentalQueries
}

func NewRentalCommands(uow shared.UnitOfWork, factory *rental.Factory, rentalQueries queries.RentalQueries) RentalCommands {
	return &rentalCommandsImpl{
		uow:           uow,
		factory:       factory,
		rentalQueries: rentalQueries,
	}
}

// CreateRental runs under a serializable transaction: the availability read,
// the overlap count and the insert must behave as one atomic step, otherwise
// two concurrent requests for the same dates could both pass the check.
func (r *rentalCommandsImpl) CreateRental(ctx context.Context, requesterID uuid.UUID, req reqdto.CreateRentalRequest) (*queries.RentalView, error) {
	domainData, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, rental.ErrPeriodInverted) {
			return nil, errs.Mark(err, ErrInvalidRentalPeriod)
		}
		return nil, errs.Mark(err, ErrRentalValidation)
	}

	var rentalID uuid.UUID
	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, readErr := tx.Reads().ListingByIDLocked(ctx, req.ListingID)
		if readErr != nil {
			return ErrListingNotFound
		}

		listingEntity, buildErr := listingFromSnapshot(snapshot)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrDatabaseOperationFailed)
		}

		rentalEntity, createErr := r.factory.CreateRental(listingEntity, requesterID, domainData.Period, domainData.Method)
		if createErr != nil {
			return markFactoryError(createErr)
		}

		count, countErr := tx.Rentals().CountOverlapping(ctx, tx.DB(), req.ListingID, domainData.Period)
		if countErr != nil {
			return errs.Mark(countErr, ErrDatabaseOperationFailed)
		}
		if count > 0 {
			return ErrPeriodOverlap
		}

		insertedID, insErr := tx.Rentals().Create(ctx, tx.DB(), rentalEntity)
		if insErr != nil {
			return errs.Mark(insErr, ErrDatabaseOperationFailed)
		}
		rentalID = insertedID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.rentalQueries.GetByIDSystem(ctx, rentalID)
}

// ConfirmRental accepts a pending request on behalf of its requester.
// Confirming also reserves the listing; both rows change or neither does.
func (r *rentalCommandsImpl) ConfirmRental(ctx context.Context, actorID, rentalID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rentalEntity, listingEntity, err := r.loadRentalWithListing(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		if rentalEntity.RequesterID() != actorID {
			return ErrRentalNotOwned
		}

		if err := rentalEntity.Confirm(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		listingEntity.Reserve()

		if err := tx.Rentals().UpdateStatus(ctx, tx.DB(), rentalID, rentalEntity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Listings().UpdateStatus(ctx, tx.DB(), listingEntity.ID(), listingEntity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// CancelRental is allowed to the requester only, and only strictly before the
// rental starts. A confirmed rental holds the listing reservation, so
// cancelling one releases it.
func (r *rentalCommandsImpl) CancelRental(ctx context.Context, actorID, rentalID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rentalEntity, listingEntity, err := r.loadRentalWithListing(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		if rentalEntity.RequesterID() != actorID {
			return ErrRentalNotOwned
		}

		wasConfirmed := rentalEntity.Status() == rental.StatusConfirmed

		if err := rentalEntity.Cancel(r.factory.Clock.Now()); err != nil {
			if errors.Is(err, rental.ErrCancelWindowClosed) {
				return errs.Mark(err, ErrCancelWindowClosed)
			}
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Rentals().UpdateStatus(ctx, tx.DB(), rentalID, rentalEntity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Another confirmed rental may have already released the listing.
		if wasConfirmed && listingEntity.Status() == listing.StatusReserved {
			if err := listingEntity.Release(); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			if err := tx.Listings().UpdateStatus(ctx, tx.DB(), listingEntity.ID(), listingEntity.Status()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (r *rentalCommandsImpl) loadRentalWithListing(ctx context.Context, tx shared.Tx, rentalID uuid.UUID) (*rental.Rental, *listing.Listing, error) {
	rentalSnapshot, err := tx.Reads().RentalByID(ctx, rentalID)
	if err != nil {
		return nil, nil, ErrRentalNotFound
	}

	listingSnapshot, err := tx.Reads().ListingByIDLocked(ctx, rentalSnapshot.ListingID)
	if err != nil {
		return nil, nil, ErrListingNotFound
	}

	rentalEntity, err := rentalFromSnapshot(rentalSnapshot)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	listingEntity, err := listingFromSnapshot(listingSnapshot)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rentalEntity, listingEntity, nil
}

func listingFromSnapshot(s *shared.ListingSnapshot) (*listing.Listing, error) {
	title, err := listing.NewTitle(s.Title)
	if err != nil {
		return nil, err
	}
	terms, err := listing.NewRentalTerms(s.PricePerDay, s.MaxRentalDays)
	if err != nil {
		return nil, err
	}
	status, err := listing.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(
		s.ID, s.OwnerID,
		title, s.Description, terms,
		s.ParcelAvailable, s.MeetupAvailable,
		status,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func rentalFromSnapshot(s *shared.RentalSnapshot) (*rental.Rental, error) {
	period, err := rental.NewPeriod(s.StartDate, s.EndDate)
	if err != nil {
		return nil, err
	}
	method, err := rental.NewFulfillmentMethod(s.Method)
	if err != nil {
		return nil, err
	}
	status := rental.Status(s.Status)
	if !status.IsValid() {
		return nil, errs.New("unknown rental status: " + s.Status)
	}
	totalPrice, err := rental.NewMoney(s.TotalPrice)
	if err != nil {
		return nil, err
	}
	return rental.ReconstructRental(
		s.ID, s.ListingID, s.RequesterID,
		period, method, status, totalPrice,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func markFactoryError(err error) error {
	switch {
	case errors.Is(err, rental.ErrOwnListing):
		return errs.Mark(err, ErrOwnListingRental)
	case errors.Is(err, rental.ErrListingNotAvailable):
		return errs.Mark(err, ErrListingNotAvailable)
	case errors.Is(err, rental.ErrStartDateNotFuture):
		return errs.Mark(err, ErrStartDateNotFuture)
	case errors.Is(err, rental.ErrMaxRentalDaysExceeded):
		return errs.Mark(err, ErrMaxRentalDaysExceeded)
	case errors.Is(err, rental.ErrFulfillmentNotSupported), errors.Is(err, rental.ErrInvalidFulfillmentMethod):
		return errs.Mark(err, ErrFulfillmentNotSupported)
	default:
		return errs.Mark(err, ErrRentalValidation)
	}
}
