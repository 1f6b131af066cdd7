package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"log/slog"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/infra"
	"seatwise/internal/infra/readstore"
	"seatwise/internal/infra/repository"
	"seatwise/internal/pkg/errs"
	"seatwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errAdvisoryLock       = errs.New("failed to acquire slot lock")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// WithinSlot serializes all writers of one restaurant's slot. The advisory
// lock is transaction-scoped, so it releases on commit or rollback; the
// unique constraint on reservation table links stays as the safety net for
// anything that bypasses the lock.
func (u *PostgresUoW) WithinSlot(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay, fn func(ctx context.Context, tx shared.Tx) error) error {
	key := slotLockKey(restaurantID, date, at)

	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(ctx context.Context, pgxTx pgx.Tx) error {
		if _, err := pgxTx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
			return errs.Mark(err, errAdvisoryLock)
		}
		return fn(ctx, newPgTx(pgxTx))
	})
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.pool)
}

// slotLockKey folds restaurant, date and time-of-day into the 64-bit keyspace
// pg_advisory_xact_lock expects. Collisions only cost extra serialization.
func slotLockKey(restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) int64 {
	h := fnv.New64a()
	h.Write(restaurantID[:])

	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(date.Year()*10000+int(date.Month())*100+date.Day()))
	binary.BigEndian.PutUint32(buf[4:], uint32(at.Minutes()))
	h.Write(buf[:])

	// #nosec G115 -- advisory lock keys are opaque 64-bit values
	return int64(h.Sum64())
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx pgx.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, pgxTx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a positive int64 above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infra.DBTX

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	notificationRepo shared.NotificationRepository
	waitlistRepo     shared.WaitlistRepository
	commandReads     shared.CommandReads
}

func newPgTx(dbtx infra.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Waitlist() shared.WaitlistRepository {
	if t.waitlistRepo == nil {
		t.waitlistRepo = repository.NewWaitlistRepository(t.dbtx)
	}
	return t.waitlistRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewCommandReadStore(t.dbtx)
	}
	return t.commandReads
}
