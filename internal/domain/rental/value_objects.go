package rental

import (
	"errors"
	"time"
)

var (
	ErrPeriodInverted           = errors.New("end date must not be before start date")
	ErrInvalidFulfillmentMethod = errors.New("invalid fulfillment method")
	ErrNegativePrice            = errors.New("price cannot be negative")
)

// Period is a whole-day rental window. Both endpoints are inclusive, so a
// rental from 2026-02-10 to 2026-02-15 spans six billable days.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return Period{}, ErrPeriodInverted
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Days counts inclusively: start == end is a one-day rental.
func (p Period) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

func (p Period) StartsAfter(day time.Time) bool {
	return p.start.After(truncateToDay(day))
}

// Overlaps uses the closed-interval test: two periods collide when
// a.start <= b.end && a.end >= b.start.
func (p Period) Overlaps(other Period) bool {
	return !p.start.After(other.end) && !p.end.Before(other.start)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}
