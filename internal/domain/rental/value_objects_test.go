//go:build unit

package rental_test

import (
	"testing"
	"time"

	"rentify-api/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriod(t *testing.T) {
	t.Run("開始日と終了日は日単位に切り捨てられる", func(t *testing.T) {
		start := time.Date(2026, 2, 10, 13, 45, 12, 0, time.UTC)
		end := time.Date(2026, 2, 15, 1, 2, 3, 0, time.UTC)

		p, err := rental.NewPeriod(start, end)
		require.NoError(t, err)

		assert.Equal(t, day(2026, 2, 10), p.Start())
		assert.Equal(t, day(2026, 2, 15), p.End())
	})

	t.Run("日数は両端を含む", func(t *testing.T) {
		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			days  int
		}{
			{"同日は1日", day(2026, 2, 10), day(2026, 2, 10), 1},
			{"2/10〜2/15は6日", day(2026, 2, 10), day(2026, 2, 15), 6},
			{"月跨ぎ", day(2026, 1, 31), day(2026, 2, 1), 2},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				p, err := rental.NewPeriod(c.start, c.end)
				require.NoError(t, err)
				assert.Equal(t, c.days, p.Days())
			})
		}
	})

	t.Run("終了日が開始日より前はNG", func(t *testing.T) {
		_, err := rental.NewPeriod(day(2026, 2, 15), day(2026, 2, 10))
		require.ErrorIs(t, err, rental.ErrPeriodInverted)
	})

	t.Run("StartsAfter は厳密比較", func(t *testing.T) {
		p, err := rental.NewPeriod(day(2026, 2, 10), day(2026, 2, 15))
		require.NoError(t, err)

		assert.True(t, p.StartsAfter(day(2026, 2, 9)))
		assert.False(t, p.StartsAfter(day(2026, 2, 10)))
		assert.False(t, p.StartsAfter(day(2026, 2, 11)))
	})

	t.Run("Overlaps は閉区間同士の交差判定", func(t *testing.T) {
		base, err := rental.NewPeriod(day(2026, 2, 10), day(2026, 2, 15))
		require.NoError(t, err)

		cases := []struct {
			name    string
			start   time.Time
			end     time.Time
			overlap bool
		}{
			{"完全に前", day(2026, 2, 1), day(2026, 2, 9), false},
			{"終了日が開始日と一致", day(2026, 2, 1), day(2026, 2, 10), true},
			{"途中から重なる", day(2026, 2, 14), day(2026, 2, 20), true},
			{"翌日から", day(2026, 2, 16), day(2026, 2, 20), false},
			{"内包", day(2026, 2, 11), day(2026, 2, 12), true},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				other, err := rental.NewPeriod(c.start, c.end)
				require.NoError(t, err)
				assert.Equal(t, c.overlap, base.Overlaps(other))
				assert.Equal(t, c.overlap, other.Overlaps(base))
			})
		}
	})
}

func TestMoney(t *testing.T) {
	t.Run("0円OK", func(t *testing.T) {
		m, err := rental.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("負額NG", func(t *testing.T) {
		_, err := rental.NewMoney(-1)
		require.ErrorIs(t, err, rental.ErrNegativePrice)
	})
}
