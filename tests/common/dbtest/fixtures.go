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

// testPasswordHash is the bcrypt hash of TestPassword.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name, _, _ := strings.Cut(email, "@")
	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, display_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (lower(email)) DO NOTHING`,
		userID, email, name, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// VillaFixture holds the columns tests usually care about; the rest take
// their schema defaults.
type VillaFixture struct {
	Name          string
	Location      string
	PricePerNight int64
	PriceHourly   *int64
	Amenities     []string
	IsActive      bool
}

func DefaultVilla() VillaFixture {
	return VillaFixture{
		Name:          "Casa Azul",
		Location:      "Goa",
		PricePerNight: 10000,
		Amenities:     []string{"pool", "wifi"},
		IsActive:      true,
	}
}

func CreateTestVilla(t *testing.T, db DBLike, v VillaFixture) uuid.UUID {
	t.Helper()

	villaID := uuid.New()
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	_, err := db.Exec(context.Background(), `INSERT INTO villas
		(id, name, location, price_per_night, price_hourly, amenities, search_text, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		villaID, v.Name, v.Location, v.PricePerNight, v.PriceHourly, amenities,
		strings.ToLower(v.Name+" "+v.Location), v.IsActive)
	require.NoError(t, err)

	return villaID
}

// CreatePastBooking inserts a confirmed nightly stay that ended before today,
// which is what a review requires.
func CreatePastBooking(t *testing.T, db DBLike, villaID, userID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(id, villa_id, user_id, guest_name, guest_email, booking_type, start_date, end_date,
		 status, base_price, tax_amount, total_price, payment_method, payment_transaction_id,
		 payment_amount, payment_status)
		VALUES ($1, $2, $3, 'Test Guest', 'guest@example.com', 'nightly', $4, $5,
		 'confirmed', 10000, 1800, 11800, 'mock_test', 'TXN_TEST', 11800, 'success')`,
		bookingID, villaID, userID, start, end)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
