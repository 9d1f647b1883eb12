//go:build unit

package rental_test

import (
	"testing"
	"time"

	"rentify-api/internal/domain/rental"
	"rentify-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRental(t *testing.T, status string) *rental.Rental {
	t.Helper()
	r, err := builder.NewRentalBuilder().WithStatus(status).BuildDomain()
	require.NoError(t, err)
	return r
}

func TestRentalConfirm(t *testing.T) {
	t.Run("requested から confirmed へ", func(t *testing.T) {
		r := buildRental(t, "requested")

		require.NoError(t, r.Confirm())
		assert.Equal(t, rental.StatusConfirmed, r.Status())
	})

	t.Run("requested 以外からはNG", func(t *testing.T) {
		for _, status := range []string{"confirmed", "in_use", "canceled", "completed"} {
			t.Run(status, func(t *testing.T) {
				r := buildRental(t, status)

				require.ErrorIs(t, r.Confirm(), rental.ErrInvalidTransition)
				assert.Equal(t, rental.Status(status), r.Status())
			})
		}
	})
}

func TestRentalCancel(t *testing.T) {
	// 既定の期間は 2026-02-10 〜 2026-02-15
	dayBefore := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	startDay := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	afterStart := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)

	t.Run("requested を開始前日にキャンセルできる", func(t *testing.T) {
		r := buildRental(t, "requested")

		require.NoError(t, r.Cancel(dayBefore))
		assert.Equal(t, rental.StatusCanceled, r.Status())
	})

	t.Run("confirmed も開始前ならキャンセルできる", func(t *testing.T) {
		r := buildRental(t, "confirmed")

		require.NoError(t, r.Cancel(dayBefore))
		assert.Equal(t, rental.StatusCanceled, r.Status())
	})

	t.Run("開始日当日はNG", func(t *testing.T) {
		r := buildRental(t, "confirmed")

		require.ErrorIs(t, r.Cancel(startDay), rental.ErrCancelWindowClosed)
		assert.Equal(t, rental.StatusConfirmed, r.Status())
	})

	t.Run("開始後はNG", func(t *testing.T) {
		r := buildRental(t, "confirmed")

		require.ErrorIs(t, r.Cancel(afterStart), rental.ErrCancelWindowClosed)
	})

	t.Run("requested/confirmed 以外からはNG", func(t *testing.T) {
		for _, status := range []string{"in_use", "canceled", "completed"} {
			t.Run(status, func(t *testing.T) {
				r := buildRental(t, status)

				require.ErrorIs(t, r.Cancel(dayBefore), rental.ErrInvalidTransition)
				assert.Equal(t, rental.Status(status), r.Status())
			})
		}
	})

	t.Run("終端状態からの再実行はエラーであり再生ではない", func(t *testing.T) {
		r := buildRental(t, "requested")

		require.NoError(t, r.Cancel(dayBefore))
		require.ErrorIs(t, r.Cancel(dayBefore), rental.ErrInvalidTransition)
		require.ErrorIs(t, r.Confirm(), rental.ErrInvalidTransition)
	})
}

func TestRentalHandover(t *testing.T) {
	onStart := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	beforeStart := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)

	t.Run("confirmed から開始日以降に in_use へ", func(t *testing.T) {
		r := buildRental(t, "confirmed")

		require.NoError(t, r.Start(onStart))
		assert.Equal(t, rental.StatusInUse, r.Status())
	})

	t.Run("開始日前の受け渡しはNG", func(t *testing.T) {
		r := buildRental(t, "confirmed")

		require.ErrorIs(t, r.Start(beforeStart), rental.ErrHandoverBeforeStart)
	})

	t.Run("in_use から completed へ", func(t *testing.T) {
		r := buildRental(t, "in_use")

		require.NoError(t, r.Complete())
		assert.Equal(t, rental.StatusCompleted, r.Status())
	})

	t.Run("in_use 以外から Complete はNG", func(t *testing.T) {
		r := buildRental(t, "confirmed")

		require.ErrorIs(t, r.Complete(), rental.ErrInvalidTransition)
	})
}

func TestRentalIsBlocking(t *testing.T) {
	blocking := map[string]bool{
		"requested": true,
		"confirmed": true,
		"in_use":    true,
		"canceled":  false,
		"completed": false,
	}
	for status, want := range blocking {
		t.Run(status, func(t *testing.T) {
			r := buildRental(t, status)
			assert.Equal(t, want, r.IsBlocking())
		})
	}
}
