package queries

import (
	"context"
	"time"

	"seatwise/internal/infra"
	"seatwise/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, restaurantID, id uuid.UUID) (*ReservationView, error)
	ListByDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]ReservationListItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, restaurantID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	// Staff only see their own restaurant's bookings.
	if view.RestaurantID != restaurantID {
		return nil, ErrReservationNotFound
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]ReservationListItem, error) {
	return q.readStore.ListByDate(ctx, restaurantID, date)
}
