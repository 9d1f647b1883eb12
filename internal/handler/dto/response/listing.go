package response

import (
	"time"

	"github.com/jinzhu/copier"

	"rentify-api/internal/usecase/queries"
)

type ListingResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PricePerDay     int64     `json:"price_per_day"`
	MaxRentalDays   int32     `json:"max_rental_days"`
	ParcelAvailable bool      `json:"parcel_available"`
	MeetupAvailable bool      `json:"meetup_available"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListingPageResponse struct {
	Items      []*ListingResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	var resp ListingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.ID = v.ID.String()
	resp.OwnerID = v.OwnerID.String()
	return &resp, nil
}

func FromListingPage(views []*queries.ListingView, next *queries.Cursor) (*ListingPageResponse, error) {
	items := make([]*ListingResponse, len(views))
	for i, v := range views {
		item, err := FromListingView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	page := &ListingPageResponse{Items: items}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page, nil
}
