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

const DefaultRestaurantName = "Default Restaurant"

func CreateTestRestaurant(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	restaurantID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO restaurants (id, name, contact_email) VALUES ($1, $2, $3)",
		restaurantID, name, "manager@"+strings.ToLower(strings.ReplaceAll(name, " ", "-"))+".test")
	require.NoError(t, err)

	return restaurantID
}

// DefaultRestaurantID resolves the restaurant seeded by SeedReferenceData.
func DefaultRestaurantID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var restaurantID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM restaurants WHERE name = $1 LIMIT 1", DefaultRestaurantName).Scan(&restaurantID)
	require.NoError(t, err)
	return restaurantID
}

func CreateTestStaff(t *testing.T, db DBLike, restaurantID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO staff (id, restaurant_id, email, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		staffID, restaurantID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

func CreateTestTable(t *testing.T, db DBLike, restaurantID uuid.UUID, number string, capacity int, status string) uuid.UUID {
	t.Helper()

	tableID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO tables (id, restaurant_id, table_number, capacity, status) VALUES ($1, $2, $3, $4, $5)",
		tableID, restaurantID, number, capacity, status)
	require.NoError(t, err)

	return tableID
}

func CreateTestCapacityRule(t *testing.T, db DBLike, restaurantID uuid.UUID, name string, startMin, endMin, slotLen, maxGuests int) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO capacity_rules (id, restaurant_id, name, start_minutes, end_minutes, slot_length_min, max_guests_per_slot)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ruleID, restaurantID, name, startMin, endMin, slotLen, maxGuests)
	require.NoError(t, err)

	return ruleID
}

// CreateTestReservation inserts a reservation and links it to the given
// tables for the slot, the same shape the command side writes.
func CreateTestReservation(t *testing.T, db DBLike, restaurantID uuid.UUID, date, timeOfDay string, partySize int, status string, tableIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO reservations (id, restaurant_id, reserved_date, reserved_time, party_size, status, customer_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, restaurantID, date, timeOfDay, partySize, status, "Fixture Guest")
	require.NoError(t, err)

	for i, tableID := range tableIDs {
		_, err := db.Exec(ctx,
			`INSERT INTO reservation_tables (reservation_id, table_id, reserved_date, reserved_time, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			reservationID, tableID, date, timeOfDay, i)
		require.NoError(t, err)
	}

	return reservationID
}

func CreateTestWaitlistEntry(t *testing.T, db DBLike, restaurantID uuid.UUID, name string, partySize int, date, timeOfDay, status string) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO waitlist_entries (id, restaurant_id, customer_name, party_size, requested_date, requested_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entryID, restaurantID, name, partySize, date, timeOfDay, status)
	require.NoError(t, err)

	return entryID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO restaurants (id, name, contact_email)
		SELECT gen_random_uuid(), $1, 'manager@default.test'
		WHERE NOT EXISTS (SELECT 1 FROM restaurants WHERE name = $1);
	`, DefaultRestaurantName)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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

	return SeedReferenceData(pool)
}
