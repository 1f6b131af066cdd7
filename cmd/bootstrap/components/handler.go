package components

import (
	"seatwise/internal/handler"
	"seatwise/internal/handler/api"
	"seatwise/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeatingHandler,
		api.NewReservationHandler,
		api.NewTableHandler,
		api.NewWaitlistHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	seating *api.SeatingHandler,
	reservation *api.ReservationHandler,
	table *api.TableHandler,
	waitlist *api.WaitlistHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Seating:      seating,
		Reservation:  reservation,
		Table:        table,
		Waitlist:     waitlist,
		Notification: notification,
	}
}
