package commands

import (
	"context"

	"seatwise/internal/domain/escalation"
	"seatwise/internal/domain/seating"
	"seatwise/internal/pkg/errs"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitlistCommands interface {
	ConvertEntry(ctx context.Context, restaurantID, entryID uuid.UUID) (*AssignmentOutcome, error)
}

type waitlistUseCaseImpl struct {
	evaluator
}

func NewWaitlistCommands(uow shared.UnitOfWork, policy seating.Policy) WaitlistCommands {
	return &waitlistUseCaseImpl{
		evaluator: evaluator{uow: uow, policy: policy},
	}
}

// ConvertEntry runs the waiting party through the same evaluation as a fresh
// request, inside the slot lock of the entry's requested date and time. On
// any outcome that produced a reservation the entry is marked converted and a
// conversion record is queued for staff.
//
// The requested slot is not known until the entry is read, so the lock key
// comes from a preliminary unlocked read; the entry is validated again inside
// the locked transaction before any write.
func (w *waitlistUseCaseImpl) ConvertEntry(ctx context.Context, restaurantID, entryID uuid.UUID) (*AssignmentOutcome, error) {
	peek, err := w.uow.Reads().WaitlistEntryByID(ctx, entryID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load waitlist entry")
	}
	if err := validateEntry(peek, restaurantID); err != nil {
		return nil, err
	}
	if w.policy.IsLargeParty(peek.PartySize) {
		return nil, errs.Mark(errs.New("large party entries require the contact workflow"), ErrInvalidInput)
	}

	var outcome *AssignmentOutcome
	err = w.uow.WithinSlot(ctx, restaurantID, peek.RequestedDate, peek.RequestedTime, func(ctx context.Context, tx shared.Tx) error {
		entry, loadErr := tx.Reads().WaitlistEntryByID(ctx, entryID)
		if loadErr != nil {
			return errs.Wrap(loadErr, "failed to load waitlist entry")
		}
		if validErr := validateEntry(entry, restaurantID); validErr != nil {
			return validErr
		}

		params := EvaluateSeatingParams{
			RestaurantID:  restaurantID,
			Date:          entry.RequestedDate,
			Time:          entry.RequestedTime,
			PartySize:     entry.PartySize,
			CustomerName:  entry.CustomerName,
			CustomerPhone: entry.CustomerPhone,
		}

		out, evalErr := w.evaluateWithin(ctx, tx, params)
		if evalErr != nil {
			return evalErr
		}

		if out.ReservationID != nil {
			if markErr := tx.Waitlist().MarkConverted(ctx, entry.ID, *out.ReservationID); markErr != nil {
				return errs.Mark(markErr, ErrDatabaseOperationFailed)
			}

			esc := escalation.NewWaitlistConversion(restaurantID, entry.ID, entry.CustomerName, entry.PartySize, seating.OutcomeKind(out.Kind))
			if notifErr := tx.Notifications().Create(ctx, esc); notifErr != nil {
				return errs.Mark(notifErr, ErrDatabaseOperationFailed)
			}
		}

		outcome = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func validateEntry(entry *shared.WaitlistEntrySnapshot, restaurantID uuid.UUID) error {
	if entry == nil || entry.RestaurantID != restaurantID {
		return ErrWaitlistEntryNotFound
	}
	if entry.Status != shared.WaitlistStatusWaiting {
		return ErrWaitlistAlreadyConverted
	}
	return nil
}
