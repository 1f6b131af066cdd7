package readstore

import (
	"context"

	"seatwise/internal/infra"
	"seatwise/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db infra.DBTX
}

func NewNotificationReadStore(db infra.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

var _ queries.NotificationReadStore = (*NotificationReadStore)(nil)

const listQueuedQuery = `
	SELECT id, kind, topic, payload, status, created_at
	FROM notifications
	WHERE restaurant_id = $1
	  AND status = 'queued'
	ORDER BY created_at
	LIMIT $2
`

func (s *NotificationReadStore) ListQueued(ctx context.Context, restaurantID uuid.UUID, limit int32) ([]queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, listQueuedQuery, restaurantID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queued notifications", err)
	}
	defer rows.Close()

	views := []queries.NotificationView{}
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Topic, &v.Payload, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}

	return views, nil
}
