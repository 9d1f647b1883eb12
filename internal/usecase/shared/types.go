package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ListingSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Description     string
	PricePerDay     int64
	MaxRentalDays   int
	ParcelAvailable bool
	MeetupAvailable bool
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RentalSnapshot struct {
	ID          uuid.UUID
	ListingID   uuid.UUID
	RequesterID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Method      string
	Status      string
	TotalPrice  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IdempotencyRecord struct {
	Key          uuid.UUID
	Domain       string
	Status       string
	ResponseCode *int32
	ResponseBody []byte
	ResultID     *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
