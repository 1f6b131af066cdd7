package readstore

import (
	"context"

	"seatwise/internal/infra"
	"seatwise/internal/pkg/pgconv"
	"seatwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WaitlistReadStore struct {
	db infra.DBTX
}

func NewWaitlistReadStore(db infra.DBTX) *WaitlistReadStore {
	return &WaitlistReadStore{db: db}
}

var _ queries.WaitlistReadStore = (*WaitlistReadStore)(nil)

const listWaitingQuery = `
	SELECT id, customer_name, customer_phone, party_size,
	       requested_date, requested_time, status, reservation_id, created_at
	FROM waitlist_entries
	WHERE restaurant_id = $1
	  AND status = 'waiting'
	ORDER BY created_at
`

func (s *WaitlistReadStore) ListWaiting(ctx context.Context, restaurantID uuid.UUID) ([]queries.WaitlistEntryView, error) {
	rows, err := s.db.Query(ctx, listWaitingQuery, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist entries", err)
	}
	defer rows.Close()

	views := []queries.WaitlistEntryView{}
	for rows.Next() {
		var (
			v             queries.WaitlistEntryView
			phone         pgtype.Text
			requestedDate pgtype.Date
			requestedTime pgtype.Time
			reservationID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.CustomerName, &phone, &v.PartySize, &requestedDate, &requestedTime, &v.Status, &reservationID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist row", err)
		}
		v.CustomerPhone = pgconv.StringPtrFromPgtype(phone)
		v.RequestedDate = pgconv.DateFromPgtype(requestedDate).Format("2006-01-02")
		v.RequestedTime = formatMinutes(pgconv.MinutesFromPgTime(requestedTime))
		v.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist rows", err)
	}

	return views, nil
}
