//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/domain/escalation"
	"seatwise/internal/domain/seating"
	"seatwise/internal/domain/table"
	"seatwise/internal/usecase/commands"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseTime(s string) capacity.TimeOfDay {
	tod, err := capacity.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

func waitingEntry(restaurantID uuid.UUID, partySize int, tod string) *shared.WaitlistEntrySnapshot {
	return &shared.WaitlistEntrySnapshot{
		ID:            uuid.New(),
		RestaurantID:  restaurantID,
		CustomerName:  "Morgan",
		PartySize:     partySize,
		RequestedDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		RequestedTime: mustParseTime(tod),
		Status:        shared.WaitlistStatusWaiting,
	}
}

func TestConvertEntry(t *testing.T) {
	t.Run("successful conversion marks the entry and queues a record", func(t *testing.T) {
		rid := uuid.New()
		entry := waitingEntry(rid, 2, "19:00")
		tx := &fakeTx{reads: &fakeReads{
			entry: entry,
			free:  []table.Table{freeTable(t, rid, "T1", 2)},
		}}
		h := newWaitlistHarness(tx)

		out, err := h.cmds.ConvertEntry(context.Background(), rid, entry.ID)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeExactSingleMatch, out.Kind)
		require.NotNil(t, out.ReservationID)

		assert.Equal(t, 1, tx.waitlist.calls)
		assert.Equal(t, entry.ID, tx.waitlist.convertedEntry)
		assert.Equal(t, *out.ReservationID, tx.waitlist.convertedReservation)

		require.Len(t, tx.notifications.created, 1)
		esc := tx.notifications.created[0]
		assert.Equal(t, escalation.KindWaitlistConversion, esc.Kind)
		require.NotNil(t, esc.Waitlist)
		assert.Equal(t, entry.ID, esc.Waitlist.EntryID)
		assert.Equal(t, "exact_single_match", esc.Waitlist.Outcome)
	})

	t.Run("capacity rejection leaves the entry waiting", func(t *testing.T) {
		rid := uuid.New()
		entry := waitingEntry(rid, 4, "19:00")
		tx := &fakeTx{reads: &fakeReads{
			entry:    entry,
			free:     []table.Table{freeTable(t, rid, "T1", 4)},
			rules:    []capacity.Rule{dinnerRule(t, rid, 5)},
			bookings: []capacity.Booking{{Time: at(t, 19, 5), PartySize: 4}},
		}}
		h := newWaitlistHarness(tx)

		out, err := h.cmds.ConvertEntry(context.Background(), rid, entry.ID)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeCapacityRejected, out.Kind)
		assert.Zero(t, tx.waitlist.calls)
	})

	t.Run("unknown entry", func(t *testing.T) {
		tx := &fakeTx{}
		h := newWaitlistHarness(tx)

		_, err := h.cmds.ConvertEntry(context.Background(), uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrWaitlistEntryNotFound)
	})

	t.Run("entry from another restaurant is invisible", func(t *testing.T) {
		entry := waitingEntry(uuid.New(), 2, "19:00")
		tx := &fakeTx{reads: &fakeReads{entry: entry}}
		h := newWaitlistHarness(tx)

		_, err := h.cmds.ConvertEntry(context.Background(), uuid.New(), entry.ID)

		assert.ErrorIs(t, err, commands.ErrWaitlistEntryNotFound)
	})

	t.Run("already converted entry", func(t *testing.T) {
		rid := uuid.New()
		entry := waitingEntry(rid, 2, "19:00")
		entry.Status = shared.WaitlistStatusConverted
		tx := &fakeTx{reads: &fakeReads{entry: entry}}
		h := newWaitlistHarness(tx)

		_, err := h.cmds.ConvertEntry(context.Background(), rid, entry.ID)

		assert.ErrorIs(t, err, commands.ErrWaitlistAlreadyConverted)
	})

	t.Run("large party entry cannot be converted automatically", func(t *testing.T) {
		rid := uuid.New()
		entry := waitingEntry(rid, 8, "19:00")
		tx := &fakeTx{reads: &fakeReads{entry: entry}}
		h := newWaitlistHarness(tx)

		_, err := h.cmds.ConvertEntry(context.Background(), rid, entry.ID)

		assert.ErrorIs(t, err, commands.ErrInvalidInput)
	})
}

type waitlistHarness struct {
	cmds commands.WaitlistCommands
}

func newWaitlistHarness(tx *fakeTx) *waitlistHarness {
	if tx.reads == nil {
		tx.reads = &fakeReads{}
	}
	if tx.reservations == nil {
		tx.reservations = &fakeReservationRepo{nextID: uuid.New()}
	}
	if tx.notifications == nil {
		tx.notifications = &fakeNotificationRepo{}
	}
	if tx.waitlist == nil {
		tx.waitlist = &fakeWaitlistRepo{}
	}
	return &waitlistHarness{
		cmds: commands.NewWaitlistCommands(&fakeUoW{tx: tx}, seating.DefaultPolicy()),
	}
}
