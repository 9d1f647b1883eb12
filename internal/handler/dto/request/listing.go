package request

import (
	"strings"

	"rentify-api/internal/domain/listing"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title           string `json:"title" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=2000"`
	PricePerDay     int64  `json:"price_per_day" binding:"required,gt=0"`
	MaxRentalDays   int    `json:"max_rental_days" binding:"required,min=1"`
	ParcelAvailable bool   `json:"parcel_available"`
	MeetupAvailable bool   `json:"meetup_available"`
}

func (r *CreateListingRequest) ToDomain(ownerID uuid.UUID) (*listing.Listing, error) {
	title, err := listing.NewTitle(r.Title)
	if err != nil {
		return nil, err
	}

	terms, err := listing.NewRentalTerms(r.PricePerDay, r.MaxRentalDays)
	if err != nil {
		return nil, err
	}

	return listing.NewListing(
		ownerID,
		title,
		strings.TrimSpace(r.Description),
		terms,
		r.ParcelAvailable,
		r.MeetupAvailable,
	)
}
