package readstore

import (
	"context"
	"fmt"
	"time"

	"seatwise/internal/infra"
	"seatwise/internal/pkg/pgconv"
	"seatwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

var _ queries.ReservationReadStore = (*ReservationReadStore)(nil)

const getReservationQuery = `
	SELECT id, restaurant_id, reserved_date, reserved_time, party_size, status,
	       customer_name, customer_phone, customer_email, note, needs_confirmation,
	       created_at, updated_at
	FROM reservations
	WHERE id = $1
`

const reservationTablesQuery = `
	SELECT t.id, t.table_number, t.capacity, t.status, t.is_active
	FROM reservation_tables rt
	JOIN tables t ON t.id = rt.table_id
	WHERE rt.reservation_id = $1
	ORDER BY rt.position
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view         queries.ReservationView
		reservedDate pgtype.Date
		reservedTime pgtype.Time
		phone        pgtype.Text
		email        pgtype.Text
		note         pgtype.Text
	)
	err := s.db.QueryRow(ctx, getReservationQuery, id).Scan(
		&view.ID,
		&view.RestaurantID,
		&reservedDate,
		&reservedTime,
		&view.PartySize,
		&view.Status,
		&view.CustomerName,
		&phone,
		&email,
		&note,
		&view.NeedsConfirmation,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	view.Date = pgconv.DateFromPgtype(reservedDate).Format("2006-01-02")
	view.Time = formatMinutes(pgconv.MinutesFromPgTime(reservedTime))
	view.CustomerPhone = pgconv.StringPtrFromPgtype(phone)
	view.CustomerEmail = pgconv.StringPtrFromPgtype(email)
	view.Note = pgconv.StringPtrFromPgtype(note)

	tables, err := s.tablesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Tables = tables

	return &view, nil
}

func (s *ReservationReadStore) tablesFor(ctx context.Context, reservationID uuid.UUID) ([]queries.TableView, error) {
	rows, err := s.db.Query(ctx, reservationTablesQuery, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation tables", err)
	}
	defer rows.Close()

	views := []queries.TableView{}
	for rows.Next() {
		var v queries.TableView
		if err := rows.Scan(&v.ID, &v.TableNumber, &v.Capacity, &v.Status, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation table row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation table rows", err)
	}

	return views, nil
}

const listReservationsQuery = `
	SELECT id, reserved_date, reserved_time, party_size, status, customer_name, created_at
	FROM reservations
	WHERE restaurant_id = $1
	  AND reserved_date = $2
	ORDER BY reserved_time, created_at
`

func (s *ReservationReadStore) ListByDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, listReservationsQuery, restaurantID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	items := []queries.ReservationListItem{}
	for rows.Next() {
		var (
			item         queries.ReservationListItem
			reservedDate pgtype.Date
			reservedTime pgtype.Time
		)
		if err := rows.Scan(&item.ID, &reservedDate, &reservedTime, &item.PartySize, &item.Status, &item.CustomerName, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.Date = pgconv.DateFromPgtype(reservedDate).Format("2006-01-02")
		item.Time = formatMinutes(pgconv.MinutesFromPgTime(reservedTime))
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return items, nil
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
