package converter

import (
	"rentify-api/internal/domain/listing"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	terms := l.Terms()
	return sqlc.CreateListingParams{
		ID:              l.ID(),
		OwnerID:         l.OwnerID(),
		Title:           l.Title().Value(),
		Description:     l.Description(),
		PricePerDay:     terms.PricePerDay(),
		MaxRentalDays:   pgconv.IntToInt32(terms.MaxRentalDays()),
		ParcelAvailable: l.ParcelAvailable(),
		MeetupAvailable: l.MeetupAvailable(),
		Status:          l.Status().String(),
	}
}
