package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"villanest/internal/domain/booking"
	"villanest/internal/domain/user"
	"villanest/internal/infra"
	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingFilter struct {
	Status  *booking.Status
	VillaID *uuid.UUID
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	List(ctx context.Context, filter BookingFilter, page Page) ([]*BookingView, error)
	ConfirmedSpans(ctx context.Context, villaID uuid.UUID) ([]booking.Span, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListAll(ctx context.Context, filter BookingFilter, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	uow       shared.UnitOfWork
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, uow shared.UnitOfWork, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, uow: uow, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if actorRole != user.RoleAdmin && v.UserID != actorID {
		return nil, ErrBookingAccess
	}

	today := q.today()
	if q.applyEffectiveStatus(v, today) {
		q.settle(ctx, today, &v.UserID)
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	today := q.today()
	q.settle(ctx, today, &userID)

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor.isFirstPage() {
		rows, err = q.readStore.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	for _, v := range rows {
		q.applyEffectiveStatus(v, today)
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, filter BookingFilter, page Page) ([]*BookingView, error) {
	today := q.today()
	q.settle(ctx, today, nil)

	rows, err := q.readStore.List(ctx, filter, page.normalize())
	if err != nil {
		return nil, err
	}
	for _, v := range rows {
		q.applyEffectiveStatus(v, today)
	}
	return rows, nil
}

func (q *bookingQueriesImpl) today() booking.Date {
	return booking.DateOf(q.clock.Now())
}

// applyEffectiveStatus reports whether the stored status was stale.
func (q *bookingQueriesImpl) applyEffectiveStatus(v *BookingView, today booking.Date) bool {
	effective := booking.EffectiveStatus(v.Status, v.EndDate, today)
	if effective == v.Status {
		return false
	}
	v.Status = effective
	return true
}

// settle persists lazy completion. Views are already corrected in memory, so
// a failure here only costs a retry on the next read.
func (q *bookingQueriesImpl) settle(ctx context.Context, today booking.Date, userID *uuid.UUID) {
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().CompleteEnded(ctx, tx.DB(), today, userID)
		if err != nil {
			return err
		}
		if n > 0 {
			slog.Debug("completed ended bookings", "count", n, "today", today.String())
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to persist booking completion", "error", err.Error())
	}
}
