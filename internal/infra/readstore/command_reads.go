package readstore

import (
	"context"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/domain/table"
	"seatwise/internal/infra"
	"seatwise/internal/pkg/pgconv"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReadStore serves the reads a seating decision consumes. It runs on
// whatever DBTX the caller passes, so inside a unit of work it sees the
// transaction's snapshot.
type CommandReadStore struct {
	db infra.DBTX
}

func NewCommandReadStore(db infra.DBTX) *CommandReadStore {
	return &CommandReadStore{db: db}
}

var _ shared.CommandReads = (*CommandReadStore)(nil)

// Transient statuses (cleaning, occupied) describe the floor right now, not
// availability on the requested date; only out_of_service removes a table
// from future slots.
const freeTablesQuery = `
	SELECT t.id, t.restaurant_id, t.table_number, t.capacity, t.status, t.is_active
	FROM tables t
	WHERE t.restaurant_id = $1
	  AND t.is_active
	  AND t.status <> 'out_of_service'
	  AND NOT EXISTS (
		SELECT 1
		FROM reservation_tables rt
		JOIN reservations r ON r.id = rt.reservation_id
		WHERE rt.table_id = t.id
		  AND rt.reserved_date = $2
		  AND rt.reserved_time = $3
		  AND r.status <> 'cancelled'
	  )
	ORDER BY t.table_number
`

func (s *CommandReadStore) FreeTables(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) ([]table.Table, error) {
	rows, err := s.db.Query(ctx, freeTablesQuery,
		restaurantID, pgconv.DateToPgtype(date), pgconv.MinutesToPgTime(at.Minutes()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query free tables", err)
	}
	defer rows.Close()

	var tables []table.Table
	for rows.Next() {
		var (
			id, rid        uuid.UUID
			number, status string
			capSeats       int
			active         bool
		)
		if err := rows.Scan(&id, &rid, &number, &capSeats, &status, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}

		t, err := table.Reconstruct(id, rid, number, capSeats, table.Status(status), active)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid table row", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}

	return tables, nil
}

const capacityRulesQuery = `
	SELECT id, restaurant_id, name, start_minutes, end_minutes, slot_length_min, max_guests_per_slot
	FROM capacity_rules
	WHERE restaurant_id = $1
	ORDER BY created_at
`

func (s *CommandReadStore) CapacityRules(ctx context.Context, restaurantID uuid.UUID) ([]capacity.Rule, error) {
	rows, err := s.db.Query(ctx, capacityRulesQuery, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query capacity rules", err)
	}
	defer rows.Close()

	var rules []capacity.Rule
	for rows.Next() {
		var (
			id, rid                      uuid.UUID
			name                         string
			startMin, endMin             int
			slotLength, maxGuestsPerSlot int
		)
		if err := rows.Scan(&id, &rid, &name, &startMin, &endMin, &slotLength, &maxGuestsPerSlot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan capacity rule row", err)
		}

		start, err := capacity.TimeOfDayFromMinutes(startMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rule start", err)
		}
		end, err := capacity.TimeOfDayFromMinutes(endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rule end", err)
		}

		rule, err := capacity.NewRule(id, rid, name, start, end, slotLength, maxGuestsPerSlot)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid capacity rule row", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate capacity rule rows", err)
	}

	return rules, nil
}

const bookingsOnQuery = `
	SELECT reserved_time, party_size
	FROM reservations
	WHERE restaurant_id = $1
	  AND reserved_date = $2
	  AND status <> 'cancelled'
`

func (s *CommandReadStore) BookingsOn(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]capacity.Booking, error) {
	rows, err := s.db.Query(ctx, bookingsOnQuery, restaurantID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var bookings []capacity.Booking
	for rows.Next() {
		var (
			reservedTime pgtype.Time
			partySize    int
		)
		if err := rows.Scan(&reservedTime, &partySize); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}

		at, err := capacity.TimeOfDayFromMinutes(pgconv.MinutesFromPgTime(reservedTime))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking time", err)
		}
		bookings = append(bookings, capacity.Booking{Time: at, PartySize: partySize})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return bookings, nil
}

const waitlistEntryQuery = `
	SELECT id, restaurant_id, customer_name, customer_phone, party_size,
	       requested_date, requested_time, status
	FROM waitlist_entries
	WHERE id = $1
`

func (s *CommandReadStore) WaitlistEntryByID(ctx context.Context, id uuid.UUID) (*shared.WaitlistEntrySnapshot, error) {
	var (
		entry         shared.WaitlistEntrySnapshot
		phone         pgtype.Text
		requestedDate pgtype.Date
		requestedTime pgtype.Time
	)
	err := s.db.QueryRow(ctx, waitlistEntryQuery, id).Scan(
		&entry.ID,
		&entry.RestaurantID,
		&entry.CustomerName,
		&phone,
		&entry.PartySize,
		&requestedDate,
		&requestedTime,
		&entry.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get waitlist entry", err)
	}

	entry.CustomerPhone = pgconv.StringPtrFromPgtype(phone)
	entry.RequestedDate = pgconv.DateFromPgtype(requestedDate)

	at, err := capacity.TimeOfDayFromMinutes(pgconv.MinutesFromPgTime(requestedTime))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid waitlist time", err)
	}
	entry.RequestedTime = at

	return &entry, nil
}
