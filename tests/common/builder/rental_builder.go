//go:build unit || e2e

package builder

import (
	"time"

	"rentify-api/internal/domain/rental"
	reqdto "rentify-api/internal/handler/dto/request"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ListingID   uuid.UUID
	RequesterID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Method      string
	Status      string
	TotalPrice  int64
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ListingID:   uuid.New(),
		RequesterID: uuid.New(),
		StartDate:   time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		Method:      "parcel",
		Status:      "requested",
		TotalPrice:  300000,
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	period, err := rental.NewPeriod(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}

	method, err := rental.NewFulfillmentMethod(r.Method)
	if err != nil {
		return nil, err
	}

	price, err := rental.NewMoney(r.TotalPrice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return rental.ReconstructRental(
		uuid.New(), r.ListingID, r.RequesterID,
		period, method, rental.Status(r.Status), price,
		now, now,
	), nil
}

func (r *RentalBuilder) BuildReadModel() *queries.RentalView {
	now := time.Now()
	return &queries.RentalView{
		ID:                uuid.New(),
		ListingID:         r.ListingID,
		ListingTitle:      "Mirrorless camera",
		OwnerID:           uuid.New(),
		RequesterID:       r.RequesterID,
		RequesterNickname: "tester",
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Method:            r.Method,
		Status:            r.Status,
		TotalPrice:        r.TotalPrice,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *RentalBuilder) BuildCreateDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		ListingID: r.ListingID,
		StartDate: r.StartDate.Format("2006-01-02"),
		EndDate:   r.EndDate.Format("2006-01-02"),
		Method:    r.Method,
	}
}

func (r *RentalBuilder) BuildSnapshot() *shared.RentalSnapshot {
	now := time.Now()
	return &shared.RentalSnapshot{
		ID:          uuid.New(),
		ListingID:   r.ListingID,
		RequesterID: r.RequesterID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Method:      r.Method,
		Status:      r.Status,
		TotalPrice:  r.TotalPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fluent builder methods
func (r *RentalBuilder) WithListingID(id uuid.UUID) *RentalBuilder {
	r.ListingID = id
	return r
}

func (r *RentalBuilder) WithRequesterID(id uuid.UUID) *RentalBuilder {
	r.RequesterID = id
	return r
}

func (r *RentalBuilder) WithPeriod(start, end time.Time) *RentalBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}

func (r *RentalBuilder) WithMethod(method string) *RentalBuilder {
	r.Method = method
	return r
}

func (r *RentalBuilder) WithStatus(status string) *RentalBuilder {
	r.Status = status
	return r
}

func (r *RentalBuilder) WithTotalPrice(price int64) *RentalBuilder {
	r.TotalPrice = price
	return r
}
