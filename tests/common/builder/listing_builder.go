//go:build unit || e2e

package builder

import (
	"time"

	"rentify-api/internal/domain/listing"
	reqdto "rentify-api/internal/handler/dto/request"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListingBuilder struct {
	OwnerID         uuid.UUID
	Title           string
	Description     string
	PricePerDay     int64
	MaxRentalDays   int
	ParcelAvailable bool
	MeetupAvailable bool
	Status          string
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		OwnerID:         uuid.New(),
		Title:           "Mirrorless camera",
		Description:     "Comes with two lenses",
		PricePerDay:     50000,
		MaxRentalDays:   30,
		ParcelAvailable: true,
		MeetupAvailable: true,
		Status:          "available",
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	title, err := listing.NewTitle(l.Title)
	if err != nil {
		return nil, err
	}

	terms, err := listing.NewRentalTerms(l.PricePerDay, l.MaxRentalDays)
	if err != nil {
		return nil, err
	}

	return listing.NewListing(l.OwnerID, title, l.Description, terms, l.ParcelAvailable, l.MeetupAvailable)
}

// BuildReconstructed returns an entity in the builder's status, bypassing the
// available-only initial state of NewListing.
func (l *ListingBuilder) BuildReconstructed() (*listing.Listing, error) {
	title, err := listing.NewTitle(l.Title)
	if err != nil {
		return nil, err
	}

	terms, err := listing.NewRentalTerms(l.PricePerDay, l.MaxRentalDays)
	if err != nil {
		return nil, err
	}

	status, err := listing.NewStatus(l.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return listing.ReconstructListing(
		uuid.New(), l.OwnerID,
		title, l.Description, terms,
		l.ParcelAvailable, l.MeetupAvailable,
		status, now, now,
	), nil
}

func (l *ListingBuilder) BuildInfra() sqlc.Listings {
	now := time.Now()
	return sqlc.Listings{
		ID:              uuid.New(),
		OwnerID:         l.OwnerID,
		Title:           l.Title,
		Description:     l.Description,
		PricePerDay:     l.PricePerDay,
		MaxRentalDays:   int32(l.MaxRentalDays),
		ParcelAvailable: l.ParcelAvailable,
		MeetupAvailable: l.MeetupAvailable,
		Status:          l.Status,
		CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (l *ListingBuilder) BuildReadModel() *queries.ListingView {
	now := time.Now()
	return &queries.ListingView{
		ID:              uuid.New(),
		OwnerID:         l.OwnerID,
		Title:           l.Title,
		Description:     l.Description,
		PricePerDay:     l.PricePerDay,
		MaxRentalDays:   int32(l.MaxRentalDays),
		ParcelAvailable: l.ParcelAvailable,
		MeetupAvailable: l.MeetupAvailable,
		Status:          l.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (l *ListingBuilder) BuildCreateDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:           l.Title,
		Description:     l.Description,
		PricePerDay:     l.PricePerDay,
		MaxRentalDays:   l.MaxRentalDays,
		ParcelAvailable: l.ParcelAvailable,
		MeetupAvailable: l.MeetupAvailable,
	}
}

func (l *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	now := time.Now()
	return &shared.ListingSnapshot{
		ID:              uuid.New(),
		OwnerID:         l.OwnerID,
		Title:           l.Title,
		Description:     l.Description,
		PricePerDay:     l.PricePerDay,
		MaxRentalDays:   l.MaxRentalDays,
		ParcelAvailable: l.ParcelAvailable,
		MeetupAvailable: l.MeetupAvailable,
		Status:          l.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Fluent builder methods
func (l *ListingBuilder) WithOwnerID(id uuid.UUID) *ListingBuilder {
	l.OwnerID = id
	return l
}

func (l *ListingBuilder) WithTitle(title string) *ListingBuilder {
	l.Title = title
	return l
}

func (l *ListingBuilder) WithPricePerDay(price int64) *ListingBuilder {
	l.PricePerDay = price
	return l
}

func (l *ListingBuilder) WithMaxRentalDays(days int) *ListingBuilder {
	l.MaxRentalDays = days
	return l
}

func (l *ListingBuilder) WithFulfillment(parcel, meetup bool) *ListingBuilder {
	l.ParcelAvailable = parcel
	l.MeetupAvailable = meetup
	return l
}

func (l *ListingBuilder) WithStatus(status string) *ListingBuilder {
	l.Status = status
	return l
}
