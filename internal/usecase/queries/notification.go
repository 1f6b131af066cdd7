package queries

import (
	"context"

	"seatwise/internal/infra"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListQueued(ctx context.Context, restaurantID uuid.UUID, limit int32) ([]NotificationView, error)
}

type NotificationReadStore interface {
	ListQueued(ctx context.Context, restaurantID uuid.UUID, limit int32) ([]NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{
		readStore: readStore,
	}
}

func (q *notificationQueriesImpl) ListQueued(ctx context.Context, restaurantID uuid.UUID, limit int32) ([]NotificationView, error) {
	views, err := q.readStore.ListQueued(ctx, restaurantID, limit)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []NotificationView{}, nil
		}
		return nil, err
	}
	return views, nil
}
