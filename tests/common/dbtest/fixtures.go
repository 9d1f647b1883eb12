//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures stay fast.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, nickname string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, nickname, password_hash, role, is_active) VALUES ($1, $2, $3, $4, 'member', true) ON CONFLICT (email) DO NOTHING",
		userID, email, nickname, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestListing(t *testing.T, db DBLike, ownerID uuid.UUID, title string, pricePerDay int64, maxRentalDays int32) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO listings (id, owner_id, title, description, price_per_day, max_rental_days, parcel_available, meetup_available, status)
		VALUES ($1, $2, $3, '', $4, $5, true, true, 'available')`,
		listingID, ownerID, title, pricePerDay, maxRentalDays)
	require.NoError(t, err)

	return listingID
}

func CreateTestRental(t *testing.T, db DBLike, listingID, requesterID uuid.UUID, start, end time.Time, status string, totalPrice int64) uuid.UUID {
	t.Helper()

	rentalID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rentals (id, listing_id, requester_id, start_date, end_date, method, status, total_price)
		VALUES ($1, $2, $3, $4, $5, 'parcel', $6, $7)`,
		rentalID, listingID, requesterID, start, end, status, totalPrice)
	require.NoError(t, err)

	return rentalID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
