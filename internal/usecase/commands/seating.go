package commands

import (
	"context"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/domain/escalation"
	"seatwise/internal/domain/seating"
	"seatwise/internal/domain/table"
	"seatwise/internal/infra"
	"seatwise/internal/pkg/clock"
	"seatwise/internal/pkg/errs"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput             = errs.New("invalid input")
	ErrTableConflict            = errs.New("table already booked for this slot")
	ErrContactEmailFailed       = errs.New("large party contact email failed")
	ErrWaitlistEntryNotFound    = errs.New("waitlist entry not found")
	ErrWaitlistAlreadyConverted = errs.New("waitlist entry already converted")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

type SeatingCommands interface {
	EvaluateAndAssign(ctx context.Context, params EvaluateSeatingParams) (*AssignmentOutcome, error)
}

type seatingUseCaseImpl struct {
	evaluator
	mailer LargePartyMailer
	clk    clock.Clock
}

func NewSeatingCommands(uow shared.UnitOfWork, policy seating.Policy, mailer LargePartyMailer, clk clock.Clock) SeatingCommands {
	return &seatingUseCaseImpl{
		evaluator: evaluator{uow: uow, policy: policy},
		mailer:    mailer,
		clk:       clk,
	}
}

func (s *seatingUseCaseImpl) EvaluateAndAssign(ctx context.Context, params EvaluateSeatingParams) (*AssignmentOutcome, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if isPastDate(params.Date, s.clk.Now()) {
		return nil, errs.Mark(errs.New("date is in the past"), ErrInvalidInput)
	}

	if s.policy.IsLargeParty(params.PartySize) {
		return s.redirectLargeParty(ctx, params)
	}

	var outcome *AssignmentOutcome
	err := s.uow.WithinSlot(ctx, params.RestaurantID, params.Date, params.Time, func(ctx context.Context, tx shared.Tx) error {
		var evalErr error
		outcome, evalErr = s.evaluateWithin(ctx, tx, params)
		return evalErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// redirectLargeParty never touches the table search; it records the request
// for staff and triggers the human-contact workflow.
func (s *seatingUseCaseImpl) redirectLargeParty(ctx context.Context, params EvaluateSeatingParams) (*AssignmentOutcome, error) {
	payload := escalation.LargePartyPayload{
		CustomerName:  params.CustomerName,
		PartySize:     params.PartySize,
		RequestedDate: params.Date.Format("2006-01-02"),
		RequestedTime: params.Time.String(),
	}
	if params.CustomerPhone != nil {
		payload.CustomerPhone = *params.CustomerPhone
	}
	if params.CustomerEmail != nil {
		payload.CustomerEmail = *params.CustomerEmail
	}
	if params.Note != nil {
		payload.Note = *params.Note
	}

	err := s.uow.WithinSlot(ctx, params.RestaurantID, params.Date, params.Time, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Create(ctx, escalation.NewLargePartyRequest(params.RestaurantID, payload))
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Mail goes out only after the escalation is durable.
	if err := s.mailer.SendLargePartyContact(ctx, payload); err != nil {
		return nil, errs.Mark(err, ErrContactEmailFailed)
	}

	return &AssignmentOutcome{Kind: OutcomeLargePartyRedirected}, nil
}

func validateParams(params EvaluateSeatingParams) error {
	if params.RestaurantID == uuid.Nil {
		return errs.Mark(errs.New("restaurant id required"), ErrInvalidInput)
	}
	if params.Date.IsZero() {
		return errs.Mark(errs.New("date required"), ErrInvalidInput)
	}
	if params.PartySize <= 0 {
		return errs.Mark(errs.New("party size must be positive"), ErrInvalidInput)
	}
	return nil
}

// isPastDate compares calendar days, not instants; a booking for later today
// is still valid.
func isPastDate(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// evaluator is the capacity-guard → policy → persist sequence shared by
// direct evaluation and waitlist conversion. All reads and writes happen on
// the caller's transaction; a failed read aborts the whole decision.
type evaluator struct {
	uow    shared.UnitOfWork
	policy seating.Policy
}

func (e *evaluator) evaluateWithin(ctx context.Context, tx shared.Tx, params EvaluateSeatingParams) (*AssignmentOutcome, error) {
	rules, err := tx.Reads().CapacityRules(ctx, params.RestaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load capacity rules")
	}

	bookings, err := tx.Reads().BookingsOn(ctx, params.RestaurantID, params.Date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load existing bookings")
	}

	decision := capacity.Evaluate(rules, params.Time, params.PartySize, bookings)
	if !decision.Allowed {
		return e.rejectForCapacity(ctx, tx, params, decision)
	}

	free, err := tx.Reads().FreeTables(ctx, params.RestaurantID, params.Date, params.Time)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load free tables")
	}

	if params.PreSelectedTableID != nil {
		outcome, handled, preErr := e.assignPreselected(ctx, tx, params, free)
		if preErr != nil || handled {
			return outcome, preErr
		}
	}

	decided := e.policy.Decide(free, params.PartySize, params.PreSelectedTableID != nil)
	return e.persistOutcome(ctx, tx, params, decided)
}

func (e *evaluator) rejectForCapacity(ctx context.Context, tx shared.Tx, params EvaluateSeatingParams, decision capacity.Decision) (*AssignmentOutcome, error) {
	esc := escalation.NewCapacityExceeded(
		params.RestaurantID,
		params.CustomerName,
		params.PartySize,
		decision.CurrentGuests,
		decision.MaxGuests,
		decision.SlotStart.String(),
		decision.SlotEnd.String(),
	)
	if err := tx.Notifications().Create(ctx, esc); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AssignmentOutcome{
		Kind: OutcomeCapacityRejected,
		Capacity: &CapacityFigures{
			CurrentGuests: decision.CurrentGuests,
			MaxGuests:     decision.MaxGuests,
			SlotStart:     decision.SlotStart.String(),
			SlotEnd:       decision.SlotEnd.String(),
		},
	}, nil
}

// assignPreselected honors a staff table choice when it is free and seats the
// party; otherwise the request falls through to the normal policy with the
// pre-selection flag set.
func (e *evaluator) assignPreselected(ctx context.Context, tx shared.Tx, params EvaluateSeatingParams, free []table.Table) (*AssignmentOutcome, bool, error) {
	for i := range free {
		if free[i].ID() != *params.PreSelectedTableID {
			continue
		}
		if !free[i].Seats(params.PartySize) {
			return nil, false, nil
		}

		id, err := e.createReservation(ctx, tx, params, shared.ReservationStatusConfirmed, false, []uuid.UUID{free[i].ID()})
		if err != nil {
			return nil, false, err
		}
		return &AssignmentOutcome{
			Kind:           OutcomeAutoAssignedSingle,
			ReservationID:  &id,
			AssignedTables: []AssignedTable{toAssigned(free[i])},
		}, true, nil
	}
	return nil, false, nil
}

func (e *evaluator) persistOutcome(ctx context.Context, tx shared.Tx, params EvaluateSeatingParams, decided seating.Outcome) (*AssignmentOutcome, error) {
	switch decided.Kind {
	case seating.OutcomeExactSingleMatch, seating.OutcomeAutoAssignedSingle:
		id, err := e.createReservation(ctx, tx, params, shared.ReservationStatusConfirmed, false, []uuid.UUID{decided.Table.ID()})
		if err != nil {
			return nil, err
		}
		return &AssignmentOutcome{
			Kind:           OutcomeKind(decided.Kind),
			ReservationID:  &id,
			AssignedTables: []AssignedTable{toAssigned(*decided.Table)},
		}, nil

	case seating.OutcomeCombinationRequired:
		var tableIDs []uuid.UUID
		var assigned []AssignedTable
		if decided.AutoApplied {
			for _, t := range decided.Proposed.Tables {
				tableIDs = append(tableIDs, t.ID())
				assigned = append(assigned, toAssigned(t))
			}
		}

		id, err := e.createReservation(ctx, tx, params, shared.ReservationStatusPending, true, tableIDs)
		if err != nil {
			return nil, err
		}

		esc := escalation.NewCombinationNeeded(
			params.RestaurantID,
			params.CustomerName,
			params.PartySize,
			decided.Proposed,
			decided.AutoApplied,
			decided.Candidates,
		)
		if notifErr := tx.Notifications().Create(ctx, esc); notifErr != nil {
			return nil, errs.Mark(notifErr, ErrDatabaseOperationFailed)
		}

		proposed := toCandidate(*decided.Proposed)
		return &AssignmentOutcome{
			Kind:           OutcomeCombinationRequired,
			ReservationID:  &id,
			AssignedTables: assigned,
			Proposed:       &proposed,
			Candidates:     toCandidates(decided.Candidates),
			AutoApplied:    decided.AutoApplied,
		}, nil

	default: // seating.OutcomeNoAssignment
		id, err := e.createReservation(ctx, tx, params, shared.ReservationStatusPending, true, nil)
		if err != nil {
			return nil, err
		}

		esc := escalation.NewManualAssignmentRequired(params.RestaurantID, params.CustomerName, params.PartySize, nil)
		if notifErr := tx.Notifications().Create(ctx, esc); notifErr != nil {
			return nil, errs.Mark(notifErr, ErrDatabaseOperationFailed)
		}

		return &AssignmentOutcome{
			Kind:          OutcomeNoAssignment,
			ReservationID: &id,
		}, nil
	}
}

func (e *evaluator) createReservation(ctx context.Context, tx shared.Tx, params EvaluateSeatingParams, status string, needsConfirmation bool, tableIDs []uuid.UUID) (uuid.UUID, error) {
	id, err := tx.Reservations().Create(ctx, shared.NewReservationRecord{
		RestaurantID:      params.RestaurantID,
		Date:              params.Date,
		Time:              params.Time,
		PartySize:         params.PartySize,
		Status:            status,
		CustomerName:      params.CustomerName,
		CustomerPhone:     params.CustomerPhone,
		CustomerEmail:     params.CustomerEmail,
		Note:              params.Note,
		NeedsConfirmation: needsConfirmation,
		TableIDs:          tableIDs,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrTableConflict
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func toAssigned(t table.Table) AssignedTable {
	return AssignedTable{ID: t.ID(), Number: t.Number(), Capacity: t.Capacity()}
}

func toCandidate(c seating.Combination) CandidateCombination {
	tables := make([]AssignedTable, len(c.Tables))
	for i, t := range c.Tables {
		tables[i] = toAssigned(t)
	}
	return CandidateCombination{Tables: tables, TotalCapacity: c.TotalCapacity, Exact: c.Exact}
}

func toCandidates(combos []seating.Combination) []CandidateCombination {
	out := make([]CandidateCombination, len(combos))
	for i, c := range combos {
		out[i] = toCandidate(c)
	}
	return out
}
