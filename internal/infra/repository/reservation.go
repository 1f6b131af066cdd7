package repository

import (
	"context"

	"seatwise/internal/infra"
	"seatwise/internal/pkg/pgconv"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db infra.DBTX
}

func NewReservationRepository(db infra.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

var _ shared.ReservationRepository = (*ReservationRepository)(nil)

const createReservationQuery = `
	INSERT INTO reservations (
		restaurant_id, reserved_date, reserved_time, party_size, status,
		customer_name, customer_phone, customer_email, note, needs_confirmation
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id
`

const linkTableQuery = `
	INSERT INTO reservation_tables (reservation_id, table_id, reserved_date, reserved_time, position)
	VALUES ($1, $2, $3, $4, $5)
`

// Create inserts the reservation row and links its tables. The unique
// constraint on (table_id, reserved_date, reserved_time) rejects a table
// already taken for the slot; the caller sees it as KindDuplicateKey.
func (r *ReservationRepository) Create(ctx context.Context, rec shared.NewReservationRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createReservationQuery,
		rec.RestaurantID,
		pgconv.DateToPgtype(rec.Date),
		pgconv.MinutesToPgTime(rec.Time.Minutes()),
		rec.PartySize,
		rec.Status,
		rec.CustomerName,
		pgconv.StringPtrToPgtype(rec.CustomerPhone),
		pgconv.StringPtrToPgtype(rec.CustomerEmail),
		pgconv.StringPtrToPgtype(rec.Note),
		rec.NeedsConfirmation,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	for i, tableID := range rec.TableIDs {
		_, err := r.db.Exec(ctx, linkTableQuery,
			id, tableID, pgconv.DateToPgtype(rec.Date), pgconv.MinutesToPgTime(rec.Time.Minutes()), i)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to link reservation table", err)
		}
	}

	return id, nil
}
