package listing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotReserved = errors.New("listing is not reserved")

type Listing struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	title           Title
	description     string
	terms           RentalTerms
	parcelAvailable bool
	meetupAvailable bool
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewListing(
	ownerID uuid.UUID,
	title Title,
	description string,
	terms RentalTerms,
	parcelAvailable, meetupAvailable bool,
) (*Listing, error) {
	if !parcelAvailable && !meetupAvailable {
		return nil, ErrNoFulfillmentMethod
	}

	return &Listing{
		id:              uuid.New(),
		ownerID:         ownerID,
		title:           title,
		description:     description,
		terms:           terms,
		parcelAvailable: parcelAvailable,
		meetupAvailable: meetupAvailable,
		status:          StatusAvailable,
	}, nil
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	title Title,
	description string,
	terms RentalTerms,
	parcelAvailable, meetupAvailable bool,
	status Status,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:              id,
		ownerID:         ownerID,
		title:           title,
		description:     description,
		terms:           terms,
		parcelAvailable: parcelAvailable,
		meetupAvailable: meetupAvailable,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (l *Listing) IsAvailable() bool {
	return l.status == StatusAvailable
}

// Reserve moves the listing out of the browsable pool when a rental is
// confirmed. Confirming another rental on an already reserved listing keeps
// it reserved, so reserving never fails.
func (l *Listing) Reserve() {
	l.status = StatusReserved
}

// Release returns a reserved listing to the browsable pool after a cancel or completion.
func (l *Listing) Release() error {
	if l.status != StatusReserved {
		return ErrNotReserved
	}
	l.status = StatusAvailable
	return nil
}

func (l *Listing) ID() uuid.UUID         { return l.id }
func (l *Listing) OwnerID() uuid.UUID    { return l.ownerID }
func (l *Listing) Title() Title          { return l.title }
func (l *Listing) Description() string   { return l.description }
func (l *Listing) Terms() RentalTerms    { return l.terms }
func (l *Listing) ParcelAvailable() bool { return l.parcelAvailable }
func (l *Listing) MeetupAvailable() bool { return l.meetupAvailable }
func (l *Listing) Status() Status        { return l.status }
func (l *Listing) CreatedAt() time.Time  { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time  { return l.updatedAt }
