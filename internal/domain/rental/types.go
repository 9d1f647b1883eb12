package rental

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusInUse     Status = "in_use"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusInUse, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

// BlockingStatuses are the states that occupy a listing's calendar.
// Canceled and completed rentals never block a new request.
func BlockingStatuses() []Status {
	return []Status{StatusRequested, StatusConfirmed, StatusInUse}
}

type FulfillmentMethod string

const (
	FulfillmentParcel FulfillmentMethod = "parcel"
	FulfillmentMeetup FulfillmentMethod = "meetup"
)

func (m FulfillmentMethod) String() string {
	return string(m)
}

func (m FulfillmentMethod) IsValid() bool {
	switch m {
	case FulfillmentParcel, FulfillmentMeetup:
		return true
	default:
		return false
	}
}

func NewFulfillmentMethod(s string) (FulfillmentMethod, error) {
	m := FulfillmentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidFulfillmentMethod
	}
	return m, nil
}
