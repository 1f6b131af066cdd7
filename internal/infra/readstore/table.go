package readstore

import (
	"context"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/infra"
	"seatwise/internal/pkg/pgconv"
	"seatwise/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableReadStore struct {
	db infra.DBTX
}

func NewTableReadStore(db infra.DBTX) *TableReadStore {
	return &TableReadStore{db: db}
}

var _ queries.TableReadStore = (*TableReadStore)(nil)

const listTablesQuery = `
	SELECT id, table_number, capacity, status, is_active
	FROM tables
	WHERE restaurant_id = $1
	ORDER BY table_number
`

func (s *TableReadStore) ListAll(ctx context.Context, restaurantID uuid.UUID) ([]queries.TableView, error) {
	rows, err := s.db.Query(ctx, listTablesQuery, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	views := []queries.TableView{}
	for rows.Next() {
		var v queries.TableView
		if err := rows.Scan(&v.ID, &v.TableNumber, &v.Capacity, &v.Status, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}

	return views, nil
}

const listFreeTablesQuery = `
	SELECT t.id, t.table_number, t.capacity, t.status, t.is_active
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

func (s *TableReadStore) ListFree(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) ([]queries.TableView, error) {
	rows, err := s.db.Query(ctx, listFreeTablesQuery,
		restaurantID, pgconv.DateToPgtype(date), pgconv.MinutesToPgTime(at.Minutes()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list free tables", err)
	}
	defer rows.Close()

	views := []queries.TableView{}
	for rows.Next() {
		var v queries.TableView
		if err := rows.Scan(&v.ID, &v.TableNumber, &v.Capacity, &v.Status, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}

	return views, nil
}
