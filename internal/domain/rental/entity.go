package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOwnListing               = errors.New("cannot rent own listing")
	ErrListingNotAvailable      = errors.New("listing is not available for rental")
	ErrStartDateNotFuture       = errors.New("start date must be after today")
	ErrMaxRentalDaysExceeded    = errors.New("rental period exceeds max rental days")
	ErrFulfillmentNotSupported  = errors.New("fulfillment method not supported by listing")
	ErrInvalidTransition        = errors.New("invalid rental status transition")
	ErrCancelWindowClosed       = errors.New("rental can no longer be canceled")
	ErrHandoverBeforeStart      = errors.New("rental cannot start before its start date")
)

type Rental struct {
	id          uuid.UUID
	listingID   uuid.UUID
	requesterID uuid.UUID
	period      Period
	method      FulfillmentMethod
	status      Status
	totalPrice  Money
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRental(
	listingID, requesterID uuid.UUID,
	period Period,
	method FulfillmentMethod,
	totalPrice Money,
) *Rental {
	return &Rental{
		id:          uuid.New(),
		listingID:   listingID,
		requesterID: requesterID,
		period:      period,
		method:      method,
		status:      StatusRequested,
		totalPrice:  totalPrice,
	}
}

func ReconstructRental(
	id, listingID, requesterID uuid.UUID,
	period Period,
	method FulfillmentMethod,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:          id,
		listingID:   listingID,
		requesterID: requesterID,
		period:      period,
		method:      method,
		status:      status,
		totalPrice:  totalPrice,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm accepts a pending request. Allowed once, from requested only;
// the actor check lives in the command layer.
func (r *Rental) Confirm() error {
	if r.status != StatusRequested {
		return ErrInvalidTransition
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel aborts a rental before it begins. Allowed from requested or confirmed,
// and only strictly before the start date.
func (r *Rental) Cancel(now time.Time) error {
	if r.status != StatusRequested && r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if !now.Before(r.period.Start()) {
		return ErrCancelWindowClosed
	}
	r.status = StatusCanceled
	return nil
}

// Start records the handover of the item, on or after the start date.
func (r *Rental) Start(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if now.Before(r.period.Start()) {
		return ErrHandoverBeforeStart
	}
	r.status = StatusInUse
	return nil
}

// Complete records the return of the item.
func (r *Rental) Complete() error {
	if r.status != StatusInUse {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	return nil
}

func (r *Rental) IsBlocking() bool {
	switch r.status {
	case StatusRequested, StatusConfirmed, StatusInUse:
		return true
	default:
		return false
	}
}

func (r *Rental) ID() uuid.UUID             { return r.id }
func (r *Rental) ListingID() uuid.UUID      { return r.listingID }
func (r *Rental) RequesterID() uuid.UUID    { return r.requesterID }
func (r *Rental) Period() Period            { return r.period }
func (r *Rental) Method() FulfillmentMethod { return r.method }
func (r *Rental) Status() Status            { return r.status }
func (r *Rental) TotalPrice() Money         { return r.totalPrice }
func (r *Rental) CreatedAt() time.Time      { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time      { return r.updatedAt }
