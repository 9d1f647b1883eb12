//go:build unit

package listing_test

import (
	"strings"
	"testing"

	"rentify-api/internal/domain/listing"
	"rentify-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, listing.StatusAvailable, actual.Status())
		assert.True(t, actual.IsAvailable())
	})

	t.Run("タイトル検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "100文字OK",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle(strings.Repeat("a", 100)) },
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle(strings.Repeat("a", 101)) },
				errIs:  listing.ErrTitleTooLong,
			},
			{
				name:   "空タイトルNG",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("") },
				errIs:  listing.ErrEmptyTitle,
			},
		})
	})

	t.Run("貸出条件検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "1日単価1円OK",
				mutate: func(b *builder.ListingBuilder) { b.WithPricePerDay(1) },
			},
			{
				name:   "1日単価0円NG",
				mutate: func(b *builder.ListingBuilder) { b.WithPricePerDay(0) },
				errIs:  listing.ErrInvalidDailyPrice,
			},
			{
				name:   "最大貸出日数1日OK",
				mutate: func(b *builder.ListingBuilder) { b.WithMaxRentalDays(1) },
			},
			{
				name:   "最大貸出日数0日NG",
				mutate: func(b *builder.ListingBuilder) { b.WithMaxRentalDays(0) },
				errIs:  listing.ErrInvalidMaxRentalDays,
			},
		})
	})

	t.Run("受け渡し方法検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "宅配のみOK",
				mutate: func(b *builder.ListingBuilder) { b.WithFulfillment(true, false) },
			},
			{
				name:   "対面のみOK",
				mutate: func(b *builder.ListingBuilder) { b.WithFulfillment(false, true) },
			},
			{
				name:   "どちらも無しNG",
				mutate: func(b *builder.ListingBuilder) { b.WithFulfillment(false, false) },
				errIs:  listing.ErrNoFulfillmentMethod,
			},
		})
	})
}

func TestListingStatusTransitions(t *testing.T) {
	t.Run("available から Reserve で reserved になる", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		l.Reserve()
		assert.Equal(t, listing.StatusReserved, l.Status())
	})

	t.Run("reserved の Reserve は冪等", func(t *testing.T) {
		l, err := builder.NewListingBuilder().WithStatus("reserved").BuildReconstructed()
		require.NoError(t, err)

		l.Reserve()
		assert.Equal(t, listing.StatusReserved, l.Status())
	})

	t.Run("reserved から Release で available になる", func(t *testing.T) {
		l, err := builder.NewListingBuilder().WithStatus("reserved").BuildReconstructed()
		require.NoError(t, err)

		require.NoError(t, l.Release())
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})

	t.Run("available の Release は ErrNotReserved", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, l.Release(), listing.ErrNotReserved)
	})

	t.Run("hidden は解放できない", func(t *testing.T) {
		l, err := builder.NewListingBuilder().WithStatus("hidden").BuildReconstructed()
		require.NoError(t, err)

		require.ErrorIs(t, l.Release(), listing.ErrNotReserved)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
