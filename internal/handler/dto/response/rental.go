package response

import (
	"time"

	"github.com/jinzhu/copier"

	"rentify-api/internal/usecase/queries"
)

type RentalResponse struct {
	ID                string    `json:"id"`
	ListingID         string    `json:"listing_id"`
	ListingTitle      string    `json:"listing_title"`
	OwnerID           string    `json:"owner_id"`
	RequesterID       string    `json:"requester_id"`
	RequesterNickname string    `json:"requester_nickname"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	TotalPrice        int64     `json:"total_price"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RentalListItemResponse struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type RentalPageResponse struct {
	Items      []*RentalListItemResponse `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

type OwnerRentalListItemResponse struct {
	ID                string    `json:"id"`
	ListingID         string    `json:"listing_id"`
	ListingTitle      string    `json:"listing_title"`
	RequesterID       string    `json:"requester_id"`
	RequesterNickname string    `json:"requester_nickname"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	TotalPrice        int64     `json:"total_price"`
	CreatedAt         time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

func FromRentalView(v *queries.RentalView) (*RentalResponse, error) {
	var resp RentalResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.ID = v.ID.String()
	resp.ListingID = v.ListingID.String()
	resp.OwnerID = v.OwnerID.String()
	resp.RequesterID = v.RequesterID.String()
	resp.StartDate = v.StartDate.Format(dateLayout)
	resp.EndDate = v.EndDate.Format(dateLayout)
	return &resp, nil
}

func FromRentalPage(items []*queries.RentalListItem, next *queries.Cursor) (*RentalPageResponse, error) {
	responses := make([]*RentalListItemResponse, len(items))
	for i, it := range items {
		var resp RentalListItemResponse
		if err := copier.Copy(&resp, it); err != nil {
			return nil, err
		}
		resp.ID = it.ID.String()
		resp.ListingID = it.ListingID.String()
		resp.StartDate = it.StartDate.Format(dateLayout)
		resp.EndDate = it.EndDate.Format(dateLayout)
		responses[i] = &resp
	}

	page := &RentalPageResponse{Items: responses}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page, nil
}

func FromOwnerRentalList(items []*queries.OwnerRentalListItem) ([]*OwnerRentalListItemResponse, error) {
	responses := make([]*OwnerRentalListItemResponse, len(items))
	for i, it := range items {
		var resp OwnerRentalListItemResponse
		if err := copier.Copy(&resp, it); err != nil {
			return nil, err
		}
		resp.ID = it.ID.String()
		resp.ListingID = it.ListingID.String()
		resp.RequesterID = it.RequesterID.String()
		resp.StartDate = it.StartDate.Format(dateLayout)
		resp.EndDate = it.EndDate.Format(dateLayout)
		responses[i] = &resp
	}
	return responses, nil
}
