package rental

import (
	"rentify-api/internal/domain/listing"
	"rentify-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateRental runs the full request validation chain in a fixed order:
// ownership, listing availability, start date, period length, fulfillment.
func (f *Factory) CreateRental(
	listingEntity *listing.Listing,
	requesterID uuid.UUID,
	period Period,
	method FulfillmentMethod,
) (*Rental, error) {
	if listingEntity.OwnerID() == requesterID {
		return nil, ErrOwnListing
	}
	if !listingEntity.IsAvailable() {
		return nil, ErrListingNotAvailable
	}
	if !period.StartsAfter(f.Clock.Now()) {
		return nil, ErrStartDateNotFuture
	}
	if period.Days() > listingEntity.Terms().MaxRentalDays() {
		return nil, ErrMaxRentalDaysExceeded
	}
	if err := validateFulfillment(listingEntity, method); err != nil {
		return nil, err
	}

	totalPrice, err := NewMoney(f.PriceCalculator.CalculatePrice(listingEntity, period))
	if err != nil {
		return nil, err
	}

	return NewRental(listingEntity.ID(), requesterID, period, method, totalPrice), nil
}

func validateFulfillment(l *listing.Listing, method FulfillmentMethod) error {
	switch method {
	case FulfillmentParcel:
		if !l.ParcelAvailable() {
			return ErrFulfillmentNotSupported
		}
	case FulfillmentMeetup:
		if !l.MeetupAvailable() {
			return ErrFulfillmentNotSupported
		}
	default:
		return ErrInvalidFulfillmentMethod
	}
	return nil
}
