package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"

	"villanest/internal/domain/booking"
	"villanest/internal/domain/user"
	"villanest/internal/infra"
	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVillaNotFound   = errs.New("villa not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type CreateBookingInput struct {
	VillaID    uuid.UUID
	Span       booking.Span
	Stay       booking.StayType
	Guests     int
	Rooms      int
	GuestName  string
	GuestEmail string
	Method     booking.PaymentMethod
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Quote     booking.Quote
}

type BookingCommands interface {
	// Create admits a booking when its span conflicts with no confirmed
	// booking of the villa. Admissions for one villa are serialized.
	Create(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error
	SetStatus(ctx context.Context, bookingID uuid.UUID, to booking.Status) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	policy shared.BookingPolicy
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, policy shared.BookingPolicy, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, policy: policy, clock: clk}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	now := c.clock.Now()
	today := booking.DateOf(now)
	if in.Span.Start().Before(today) {
		return nil, booking.ErrPastDate
	}
	if err := c.policy.Checker.CheckLength(in.Span); err != nil {
		return nil, err
	}

	var created *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		villa, err := tx.Reads().VillaByID(ctx, in.VillaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVillaNotFound
			}
			return err
		}
		if !villa.IsActive {
			return ErrVillaNotFound
		}

		guest, err := c.resolveGuest(ctx, tx, userID, in.GuestName, in.GuestEmail)
		if err != nil {
			return err
		}

		rate := booking.RateFor(in.Span.Type(), villa.PricePerNight, villa.PriceHourly, c.policy.DefaultHourlyRate)
		quote, err := booking.QuoteSpan(in.Span, rate, in.Stay, in.Guests, in.Rooms)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(booking.NewParams{
			VillaID: in.VillaID,
			UserID:  userID,
			Guest:   guest,
			Span:    in.Span,
			Stay:    in.Stay,
			Guests:  in.Guests,
			Rooms:   in.Rooms,
			Quote:   quote,
			Method:  in.Method,
		}, today, now)
		if err != nil {
			return err
		}

		if err := tx.Bookings().LockVilla(ctx, tx.DB(), in.VillaID); err != nil {
			return err
		}
		existing, err := tx.Bookings().ConfirmedSpans(ctx, tx.DB(), in.VillaID)
		if err != nil {
			return err
		}
		if err := c.policy.Checker.Check(in.Span, existing); err != nil {
			return err
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}

		payload, err := json.Marshal(confirmationOf(b, villa))
		if err != nil {
			return errs.Wrap(err, "failed to encode booking confirmation")
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, shared.TopicBookingConfirmed, payload, now); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking admitted",
		"booking_id", created.ID().String(),
		"villa_id", created.VillaID().String(),
		"type", created.Span().Type().String(),
		"total", created.Quote().Total)

	return &CreateBookingResult{BookingID: created.ID(), Quote: created.Quote()}, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, func(b *booking.Booking, today booking.Date) error {
		if actorRole != user.RoleAdmin && b.UserID() != actorID {
			return ErrBookingAccess
		}
		return b.Cancel(today, c.clock.Now())
	})
}

// SetStatus is the admin override. Only confirmed bookings can move, and only
// to cancelled or completed.
func (c *bookingCommandsImpl) SetStatus(ctx context.Context, bookingID uuid.UUID, to booking.Status) error {
	return c.transition(ctx, bookingID, func(b *booking.Booking, today booking.Date) error {
		switch to {
		case booking.StatusCancelled:
			return b.Cancel(today, c.clock.Now())
		case booking.StatusCompleted:
			return b.Complete(today, c.clock.Now())
		default:
			return booking.ErrInvalidTransition
		}
	})
}

func (c *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, apply func(b *booking.Booking, today booking.Date) error) error {
	today := booking.DateOf(c.clock.Now())
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		from := b.Status()
		if err := apply(b, today); err != nil {
			return err
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b, from)
	})
}

// resolveGuest fills missing contact fields from the booking user's account.
func (c *bookingCommandsImpl) resolveGuest(ctx context.Context, tx shared.Tx, userID uuid.UUID, name, email string) (booking.Guest, error) {
	if name == "" || email == "" {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.Guest{}, ErrUserNotFound
			}
			return booking.Guest{}, err
		}
		if name == "" {
			name = u.DisplayName
		}
		if email == "" {
			email = u.Email
		}
	}
	return booking.NewGuest(name, email)
}

func confirmationOf(b *booking.Booking, villa *shared.VillaSnapshot) shared.BookingConfirmation {
	span := b.Span()
	msg := shared.BookingConfirmation{
		BookingID:     b.ID().String(),
		GuestName:     b.Guest().Name,
		GuestEmail:    b.Guest().Email,
		VillaName:     villa.Name,
		VillaLocation: villa.Location,
		BookingType:   span.Type().String(),
		StartDate:     span.Start().String(),
		EndDate:       span.End().String(),
		StayType:      b.Stay().String(),
		Guests:        b.Guests(),
		Rooms:         b.Rooms(),
		BasePrice:     b.Quote().Base,
		TaxAmount:     b.Quote().Tax,
		TotalPrice:    b.Quote().Total,
		Currency:      b.Payment().Currency,
		PaymentMethod: b.Payment().Method.String(),
		PaymentStatus: b.Payment().Status.String(),
		TransactionID: b.Payment().TransactionID,
		Status:        b.Status().String(),
	}
	if span.IsHourly() {
		msg.StartTime = booking.FormatHour(span.StartHour())
		msg.EndTime = booking.FormatHour(span.EndHour())
	}
	return msg
}
