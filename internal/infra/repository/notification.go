package repository

import (
	"context"

	"seatwise/internal/domain/escalation"
	"seatwise/internal/infra"
	"seatwise/internal/usecase/shared"
)

type NotificationRepository struct {
	db infra.DBTX
}

func NewNotificationRepository(db infra.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)

const createNotificationQuery = `
	INSERT INTO notifications (restaurant_id, kind, topic, payload, status)
	VALUES ($1, $2, $3, $4, 'queued')
`

func (r *NotificationRepository) Create(ctx context.Context, esc escalation.Escalation) error {
	payload, err := esc.PayloadJSON()
	if err != nil {
		return infra.WrapRepoErr("failed to encode escalation payload", err)
	}

	_, err = r.db.Exec(ctx, createNotificationQuery,
		esc.RestaurantID, string(esc.Kind), esc.Summary, payload)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}

	return nil
}
