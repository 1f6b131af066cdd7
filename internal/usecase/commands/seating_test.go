//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/domain/escalation"
	"seatwise/internal/domain/seating"
	"seatwise/internal/domain/table"
	"seatwise/internal/infra"
	"seatwise/internal/pkg/clock"
	"seatwise/internal/usecase/commands"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// fakes
// ----------------------------------------------------------------------------

type fakeReads struct {
	free     []table.Table
	rules    []capacity.Rule
	bookings []capacity.Booking
	entry    *shared.WaitlistEntrySnapshot

	freeErr     error
	rulesErr    error
	bookingsErr error
}

func (r *fakeReads) FreeTables(context.Context, uuid.UUID, time.Time, capacity.TimeOfDay) ([]table.Table, error) {
	if r.freeErr != nil {
		return nil, r.freeErr
	}
	return r.free, nil
}

func (r *fakeReads) CapacityRules(context.Context, uuid.UUID) ([]capacity.Rule, error) {
	if r.rulesErr != nil {
		return nil, r.rulesErr
	}
	return r.rules, nil
}

func (r *fakeReads) BookingsOn(context.Context, uuid.UUID, time.Time) ([]capacity.Booking, error) {
	if r.bookingsErr != nil {
		return nil, r.bookingsErr
	}
	return r.bookings, nil
}

func (r *fakeReads) WaitlistEntryByID(context.Context, uuid.UUID) (*shared.WaitlistEntrySnapshot, error) {
	return r.entry, nil
}

type fakeReservationRepo struct {
	created []shared.NewReservationRecord
	nextID  uuid.UUID
	err     error
}

func (r *fakeReservationRepo) Create(_ context.Context, rec shared.NewReservationRecord) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.created = append(r.created, rec)
	return r.nextID, nil
}

type fakeNotificationRepo struct {
	created []escalation.Escalation
	err     error
}

func (r *fakeNotificationRepo) Create(_ context.Context, esc escalation.Escalation) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, esc)
	return nil
}

type fakeWaitlistRepo struct {
	convertedEntry       uuid.UUID
	convertedReservation uuid.UUID
	calls                int
}

func (r *fakeWaitlistRepo) MarkConverted(_ context.Context, entryID, reservationID uuid.UUID) error {
	r.convertedEntry = entryID
	r.convertedReservation = reservationID
	r.calls++
	return nil
}

type fakeTx struct {
	reads         *fakeReads
	reservations  *fakeReservationRepo
	notifications *fakeNotificationRepo
	waitlist      *fakeWaitlistRepo
}

func (t *fakeTx) Reservations() shared.ReservationRepository   { return t.reservations }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Waitlist() shared.WaitlistRepository          { return t.waitlist }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) WithinSlot(ctx context.Context, _ uuid.UUID, _ time.Time, _ capacity.TimeOfDay, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) Reads() shared.CommandReads { return u.tx.reads }

type fakeMailer struct {
	sent []escalation.LargePartyPayload
	err  error
}

func (m *fakeMailer) SendLargePartyContact(_ context.Context, payload escalation.LargePartyPayload) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, payload)
	return nil
}

// ----------------------------------------------------------------------------
// helpers
// ----------------------------------------------------------------------------

func freeTable(t *testing.T, restaurantID uuid.UUID, number string, capacity int) table.Table {
	t.Helper()
	tab, err := table.Reconstruct(uuid.New(), restaurantID, number, capacity, table.StatusAvailable, true)
	require.NoError(t, err)
	return tab
}

func dinnerRule(t *testing.T, restaurantID uuid.UUID, maxGuests int) capacity.Rule {
	t.Helper()
	start, err := capacity.NewTimeOfDay(18, 0)
	require.NoError(t, err)
	end, err := capacity.NewTimeOfDay(21, 0)
	require.NoError(t, err)
	rule, err := capacity.NewRule(uuid.New(), restaurantID, "dinner", start, end, 15, maxGuests)
	require.NoError(t, err)
	return rule
}

func at(t *testing.T, hour, minute int) capacity.TimeOfDay {
	t.Helper()
	tod, err := capacity.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func duplicateKeyErr() error {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	return infra.WrapRepoErr("failed to link reservation table", dup)
}

type harness struct {
	uow    *fakeUoW
	mailer *fakeMailer
	cmds   commands.SeatingCommands

	restaurantID  uuid.UUID
	reservationID uuid.UUID
}

func newHarness(t *testing.T, tx *fakeTx) *harness {
	t.Helper()

	reservationID := uuid.New()
	if tx.reservations == nil {
		tx.reservations = &fakeReservationRepo{nextID: reservationID}
	} else if tx.reservations.nextID == uuid.Nil {
		tx.reservations.nextID = reservationID
	}
	if tx.notifications == nil {
		tx.notifications = &fakeNotificationRepo{}
	}
	if tx.waitlist == nil {
		tx.waitlist = &fakeWaitlistRepo{}
	}
	if tx.reads == nil {
		tx.reads = &fakeReads{}
	}

	uow := &fakeUoW{tx: tx}
	mailer := &fakeMailer{}
	clk := clock.NewFixedClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	return &harness{
		uow:           uow,
		mailer:        mailer,
		cmds:          commands.NewSeatingCommands(uow, seating.DefaultPolicy(), mailer, clk),
		restaurantID:  uuid.New(),
		reservationID: tx.reservations.nextID,
	}
}

func (h *harness) params(t *testing.T, partySize int) commands.EvaluateSeatingParams {
	t.Helper()
	return commands.EvaluateSeatingParams{
		RestaurantID: h.restaurantID,
		Date:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Time:         at(t, 19, 0),
		PartySize:    partySize,
		CustomerName: "Dana",
	}
}

// ----------------------------------------------------------------------------
// validation and redirects
// ----------------------------------------------------------------------------

func TestEvaluateAndAssign_Validation(t *testing.T) {
	t.Run("rejects non-positive party size", func(t *testing.T) {
		h := newHarness(t, &fakeTx{})
		p := h.params(t, 0)

		_, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		assert.ErrorIs(t, err, commands.ErrInvalidInput)
	})

	t.Run("rejects past dates", func(t *testing.T) {
		h := newHarness(t, &fakeTx{})
		p := h.params(t, 2)
		p.Date = time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

		_, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		assert.ErrorIs(t, err, commands.ErrInvalidInput)
	})

	t.Run("accepts today", func(t *testing.T) {
		tx := &fakeTx{reads: &fakeReads{}}
		h := newHarness(t, tx)
		p := h.params(t, 2)
		p.Date = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeNoAssignment, out.Kind)
	})
}

func TestEvaluateAndAssign_LargeParty(t *testing.T) {
	t.Run("party above the ceiling is redirected without a table search", func(t *testing.T) {
		// Plenty of free capacity; none of it may be touched.
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{freeTable(t, rid, "T1", 8)}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 7))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeLargePartyRedirected, out.Kind)
		assert.Nil(t, out.ReservationID)
		assert.Empty(t, tx.reservations.created)

		require.Len(t, tx.notifications.created, 1)
		esc := tx.notifications.created[0]
		assert.Equal(t, escalation.KindLargePartyRequest, esc.Kind)
		require.NotNil(t, esc.LargeParty)
		assert.Equal(t, 7, esc.LargeParty.PartySize)

		require.Len(t, h.mailer.sent, 1)
		assert.Equal(t, "Dana", h.mailer.sent[0].CustomerName)
	})

	t.Run("party of exactly six is evaluated normally", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{freeTable(t, rid, "T1", 6)}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 6))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeExactSingleMatch, out.Kind)
		assert.Empty(t, h.mailer.sent)
	})

	t.Run("mail failure surfaces after the escalation is stored", func(t *testing.T) {
		tx := &fakeTx{}
		h := newHarness(t, tx)
		h.mailer.err = errors.New("smtp down")

		_, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 9))

		assert.ErrorIs(t, err, commands.ErrContactEmailFailed)
		assert.Len(t, tx.notifications.created, 1)
	})
}

// ----------------------------------------------------------------------------
// capacity guard
// ----------------------------------------------------------------------------

func TestEvaluateAndAssign_CapacityGuard(t *testing.T) {
	t.Run("rejects when the slot sum would exceed the cap", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{
			free:     []table.Table{freeTable(t, rid, "T1", 4)},
			rules:    []capacity.Rule{dinnerRule(t, rid, 10)},
			bookings: []capacity.Booking{{Time: at(t, 18, 50), PartySize: 8}},
		}}
		h := newHarness(t, tx)
		p := h.params(t, 3)
		p.Time = at(t, 18, 45)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeCapacityRejected, out.Kind)
		assert.Nil(t, out.ReservationID)
		require.NotNil(t, out.Capacity)
		assert.Equal(t, 8, out.Capacity.CurrentGuests)
		assert.Equal(t, 10, out.Capacity.MaxGuests)
		assert.Equal(t, "18:45", out.Capacity.SlotStart)
		assert.Equal(t, "19:00", out.Capacity.SlotEnd)

		require.Len(t, tx.notifications.created, 1)
		assert.Equal(t, escalation.KindCapacityExceeded, tx.notifications.created[0].Kind)
		assert.Empty(t, tx.reservations.created)
	})

	t.Run("allows when the sum fits exactly", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{
			free:     []table.Table{freeTable(t, rid, "T1", 2)},
			rules:    []capacity.Rule{dinnerRule(t, rid, 10)},
			bookings: []capacity.Booking{{Time: at(t, 19, 5), PartySize: 8}},
		}}
		h := newHarness(t, tx)
		p := h.params(t, 2)
		p.Time = at(t, 19, 0)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeExactSingleMatch, out.Kind)
	})

	t.Run("time outside every rule window is unconstrained", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{
			free:  []table.Table{freeTable(t, rid, "T1", 2)},
			rules: []capacity.Rule{dinnerRule(t, rid, 1)},
		}}
		h := newHarness(t, tx)
		p := h.params(t, 2)
		p.Time = at(t, 12, 0)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeExactSingleMatch, out.Kind)
	})
}

// ----------------------------------------------------------------------------
// assignment outcomes
// ----------------------------------------------------------------------------

func TestEvaluateAndAssign_SingleTables(t *testing.T) {
	t.Run("exact match creates a confirmed reservation with that table", func(t *testing.T) {
		rid := uuid.New()
		exact := freeTable(t, rid, "T2", 4)
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{freeTable(t, rid, "T1", 6), exact}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 4))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeExactSingleMatch, out.Kind)
		require.NotNil(t, out.ReservationID)
		assert.Equal(t, h.reservationID, *out.ReservationID)
		require.Len(t, out.AssignedTables, 1)
		assert.Equal(t, exact.ID(), out.AssignedTables[0].ID)

		require.Len(t, tx.reservations.created, 1)
		rec := tx.reservations.created[0]
		assert.Equal(t, shared.ReservationStatusConfirmed, rec.Status)
		assert.False(t, rec.NeedsConfirmation)
		assert.Equal(t, []uuid.UUID{exact.ID()}, rec.TableIDs)
		assert.Empty(t, tx.notifications.created)
	})

	t.Run("small party takes the smallest sufficient table", func(t *testing.T) {
		rid := uuid.New()
		smallest := freeTable(t, rid, "T2", 4)
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{freeTable(t, rid, "T1", 8), smallest, freeTable(t, rid, "T3", 6)}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 3))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeAutoAssignedSingle, out.Kind)
		require.Len(t, out.AssignedTables, 1)
		assert.Equal(t, smallest.ID(), out.AssignedTables[0].ID)
	})

	t.Run("party above four skips single-table sufficiency", func(t *testing.T) {
		// A six-seater could hold the five: the rules still demand a
		// combination proposal confirmed by staff.
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{
			freeTable(t, rid, "T1", 6),
			freeTable(t, rid, "T2", 3),
			freeTable(t, rid, "T3", 3),
		}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 5))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeCombinationRequired, out.Kind)
		assert.False(t, out.AutoApplied)
	})
}

func TestEvaluateAndAssign_Combinations(t *testing.T) {
	t.Run("small party combination is auto applied", func(t *testing.T) {
		rid := uuid.New()
		a := freeTable(t, rid, "A", 2)
		b := freeTable(t, rid, "B", 2)
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{a, b}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 4))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeCombinationRequired, out.Kind)
		assert.True(t, out.AutoApplied)
		require.NotNil(t, out.Proposed)
		assert.Equal(t, 4, out.Proposed.TotalCapacity)
		require.Len(t, out.AssignedTables, 2)

		require.Len(t, tx.reservations.created, 1)
		rec := tx.reservations.created[0]
		assert.Equal(t, shared.ReservationStatusPending, rec.Status)
		assert.True(t, rec.NeedsConfirmation)
		assert.Equal(t, []uuid.UUID{a.ID(), b.ID()}, rec.TableIDs)

		require.Len(t, tx.notifications.created, 1)
		esc := tx.notifications.created[0]
		assert.Equal(t, escalation.KindCombinationNeeded, esc.Kind)
		require.NotNil(t, esc.CombinationNeeded)
		assert.True(t, esc.CombinationNeeded.AutoApplied)
	})

	t.Run("mid-size party combination stays unlinked until staff confirm", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{
			freeTable(t, rid, "A", 3),
			freeTable(t, rid, "B", 3),
		}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 6))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeCombinationRequired, out.Kind)
		assert.False(t, out.AutoApplied)
		assert.Empty(t, out.AssignedTables)

		require.Len(t, tx.reservations.created, 1)
		assert.Empty(t, tx.reservations.created[0].TableIDs)
	})

	t.Run("no viable seating still records the request for staff", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{freeTable(t, rid, "T1", 2)}}}
		h := newHarness(t, tx)

		out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 6))

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeNoAssignment, out.Kind)
		require.NotNil(t, out.ReservationID)

		require.Len(t, tx.reservations.created, 1)
		rec := tx.reservations.created[0]
		assert.Equal(t, shared.ReservationStatusPending, rec.Status)
		assert.Empty(t, rec.TableIDs)

		require.Len(t, tx.notifications.created, 1)
		assert.Equal(t, escalation.KindManualAssignmentRequired, tx.notifications.created[0].Kind)
	})
}

func TestEvaluateAndAssign_Preselection(t *testing.T) {
	t.Run("free and sufficient pre-selected table is honored", func(t *testing.T) {
		rid := uuid.New()
		chosen := freeTable(t, rid, "T9", 6)
		smaller := freeTable(t, rid, "T1", 4)
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{smaller, chosen}}}
		h := newHarness(t, tx)
		p := h.params(t, 4)
		chosenID := chosen.ID()
		p.PreSelectedTableID = &chosenID

		out, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeAutoAssignedSingle, out.Kind)
		require.Len(t, out.AssignedTables, 1)
		assert.Equal(t, chosen.ID(), out.AssignedTables[0].ID)
		assert.Empty(t, tx.notifications.created)
	})

	t.Run("insufficient pre-selection falls through and suppresses auto apply", func(t *testing.T) {
		rid := uuid.New()
		tooSmall := freeTable(t, rid, "T1", 2)
		other := freeTable(t, rid, "T2", 2)
		tx := &fakeTx{reads: &fakeReads{free: []table.Table{tooSmall, other}}}
		h := newHarness(t, tx)
		p := h.params(t, 4)
		tooSmallID := tooSmall.ID()
		p.PreSelectedTableID = &tooSmallID

		out, err := h.cmds.EvaluateAndAssign(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeCombinationRequired, out.Kind)
		assert.False(t, out.AutoApplied)
		require.Len(t, tx.reservations.created, 1)
		assert.Empty(t, tx.reservations.created[0].TableIDs)
	})
}

func TestEvaluateAndAssign_ReadFailures(t *testing.T) {
	cases := []struct {
		name  string
		reads *fakeReads
	}{
		{
			name:  "capacity rules read fails",
			reads: &fakeReads{rulesErr: errors.New("connection reset")},
		},
		{
			name:  "bookings read fails",
			reads: &fakeReads{bookingsErr: errors.New("connection reset")},
		},
		{
			name:  "free tables read fails",
			reads: &fakeReads{freeErr: errors.New("connection reset")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name+" and aborts without writes", func(t *testing.T) {
			tx := &fakeTx{reads: tc.reads}
			h := newHarness(t, tx)

			out, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 4))

			require.Error(t, err)
			assert.ErrorContains(t, err, "connection reset")
			assert.Nil(t, out)
			assert.Empty(t, tx.reservations.created)
			assert.Empty(t, tx.notifications.created)
			assert.Zero(t, tx.waitlist.calls)
		})
	}
}

func TestEvaluateAndAssign_Conflict(t *testing.T) {
	t.Run("duplicate slot link surfaces as a table conflict", func(t *testing.T) {
		rid := uuid.New()
		tx := &fakeTx{
			reads:        &fakeReads{free: []table.Table{freeTable(t, rid, "T1", 4)}},
			reservations: &fakeReservationRepo{err: duplicateKeyErr()},
		}
		h := newHarness(t, tx)

		_, err := h.cmds.EvaluateAndAssign(context.Background(), h.params(t, 4))

		assert.ErrorIs(t, err, commands.ErrTableConflict)
	})
}
