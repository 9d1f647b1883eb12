package request

import (
	"errors"
	"time"

	"rentify-api/internal/domain/rental"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("dates must use YYYY-MM-DD format")

type CreateRentalRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Method    string    `json:"method" binding:"required,oneof=parcel meetup"`
}

type RentalDomainData struct {
	Period rental.Period
	Method rental.FulfillmentMethod
}

func (r *CreateRentalRequest) ToDomain() (*RentalDomainData, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	period, err := rental.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	method, err := rental.NewFulfillmentMethod(r.Method)
	if err != nil {
		return nil, err
	}

	return &RentalDomainData{
		Period: period,
		Method: method,
	}, nil
}
