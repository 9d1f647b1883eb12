package listing

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyTitle           = errors.New("title must not be empty")
	ErrTitleTooLong         = errors.New("title must be at most 100 characters")
	ErrInvalidDailyPrice    = errors.New("daily price must be positive")
	ErrInvalidMaxRentalDays = errors.New("max rental days must be at least 1")
	ErrNoFulfillmentMethod  = errors.New("at least one fulfillment method is required")
	ErrInvalidStatus        = errors.New("invalid listing status")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > 100 {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}

// RentalTerms bundles the pricing and period constraints an owner sets on a listing.
type RentalTerms struct {
	pricePerDay   int64
	maxRentalDays int
}

func NewRentalTerms(pricePerDay int64, maxRentalDays int) (RentalTerms, error) {
	if pricePerDay <= 0 {
		return RentalTerms{}, ErrInvalidDailyPrice
	}
	if maxRentalDays < 1 {
		return RentalTerms{}, ErrInvalidMaxRentalDays
	}
	return RentalTerms{pricePerDay: pricePerDay, maxRentalDays: maxRentalDays}, nil
}

func (t RentalTerms) PricePerDay() int64 {
	return t.pricePerDay
}

func (t RentalTerms) MaxRentalDays() int {
	return t.maxRentalDays
}
