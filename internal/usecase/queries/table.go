package queries

import (
	"context"
	"time"

	"seatwise/internal/domain/capacity"

	"github.com/google/uuid"
)

type TableQueries interface {
	ListAll(ctx context.Context, restaurantID uuid.UUID) ([]TableView, error)
	ListFree(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) ([]TableView, error)
}

type TableReadStore interface {
	ListAll(ctx context.Context, restaurantID uuid.UUID) ([]TableView, error)
	ListFree(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) ([]TableView, error)
}

type tableQueriesImpl struct {
	readStore TableReadStore
}

func NewTableQueries(readStore TableReadStore) TableQueries {
	return &tableQueriesImpl{
		readStore: readStore,
	}
}

func (q *tableQueriesImpl) ListAll(ctx context.Context, restaurantID uuid.UUID) ([]TableView, error) {
	return q.readStore.ListAll(ctx, restaurantID)
}

func (q *tableQueriesImpl) ListFree(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) ([]TableView, error) {
	return q.readStore.ListFree(ctx, restaurantID, date, at)
}
