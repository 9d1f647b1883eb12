package rental

import (
	"rentify-api/internal/domain/listing"
)

type PriceCalculator interface {
	CalculatePrice(l *listing.Listing, period Period) int64
}

// DefaultPriceCalculator charges the listing's daily rate for every day of the
// period, endpoints inclusive.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) CalculatePrice(l *listing.Listing, period Period) int64 {
	return l.Terms().PricePerDay() * int64(period.Days())
}
