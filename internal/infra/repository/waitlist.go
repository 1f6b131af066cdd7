package repository

import (
	"context"

	"seatwise/internal/infra"
	"seatwise/internal/pkg/errs"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitlistRepository struct {
	db infra.DBTX
}

func NewWaitlistRepository(db infra.DBTX) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

var _ shared.WaitlistRepository = (*WaitlistRepository)(nil)

const markConvertedQuery = `
	UPDATE waitlist_entries
	SET status = 'converted', reservation_id = $2, updated_at = now()
	WHERE id = $1
	  AND status = 'waiting'
`

func (r *WaitlistRepository) MarkConverted(ctx context.Context, entryID, reservationID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, markConvertedQuery, entryID, reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark waitlist entry converted", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waitlist entry not in waiting state", errs.New("no rows updated"))
	}
	return nil
}
