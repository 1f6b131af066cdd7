package queries

import (
	"context"

	"github.com/google/uuid"
)

type WaitlistQueries interface {
	ListWaiting(ctx context.Context, restaurantID uuid.UUID) ([]WaitlistEntryView, error)
}

type WaitlistReadStore interface {
	ListWaiting(ctx context.Context, restaurantID uuid.UUID) ([]WaitlistEntryView, error)
}

type waitlistQueriesImpl struct {
	readStore WaitlistReadStore
}

func NewWaitlistQueries(readStore WaitlistReadStore) WaitlistQueries {
	return &waitlistQueriesImpl{
		readStore: readStore,
	}
}

func (q *waitlistQueriesImpl) ListWaiting(ctx context.Context, restaurantID uuid.UUID) ([]WaitlistEntryView, error) {
	return q.readStore.ListWaiting(ctx, restaurantID)
}
