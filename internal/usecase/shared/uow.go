package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"villanest/internal/domain/booking"
	"villanest/internal/domain/review"
	"villanest/internal/domain/user"
	"villanest/internal/domain/villa"
	sqlc "villanest/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Villas() VillaRepository
	Reviews() ReviewRepository
	Ratings() RatingRepository
	Favorites() FavoriteRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	VillaByID(ctx context.Context, id uuid.UUID) (*VillaSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	HasCompletedStay(ctx context.Context, villaID, userID uuid.UUID, today booking.Date) (bool, error)
}

type BookingRepository interface {
	// LockVilla blocks until no other transaction admits bookings for the villa.
	// The lock is released on commit or rollback.
	LockVilla(ctx context.Context, tx sqlc.DBTX, villaID uuid.UUID) error
	ConfirmedSpans(ctx context.Context, tx sqlc.DBTX, villaID uuid.UUID) ([]booking.Span, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) error
	CompleteEnded(ctx context.Context, tx sqlc.DBTX, today booking.Date, userID *uuid.UUID) (int64, error)
}

type VillaRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *villa.Villa) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, v *villa.Villa) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, v *villa.Villa) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*villa.Villa, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error)
	UpdateVisibility(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
}

type RatingRepository interface {
	// Recalculate rewrites the villa's average and count from its visible reviews.
	Recalculate(ctx context.Context, tx sqlc.DBTX, villaID uuid.UUID) (review.Summary, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, userID, villaID uuid.UUID, at time.Time) (bool, error)
	Remove(ctx context.Context, tx sqlc.DBTX, userID, villaID uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, reason string) error
	Release(ctx context.Context, tx sqlc.DBTX, jobIDs []uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}
