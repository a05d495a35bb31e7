package booking

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Guest struct {
	Name  string
	Email string
}

func NewGuest(name, email string) (Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return Guest{}, ErrInvalidGuest
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Guest{}, ErrInvalidGuest
	}
	return Guest{Name: name, Email: email}, nil
}

type Booking struct {
	id        uuid.UUID
	villaID   uuid.UUID
	userID    uuid.UUID
	guest     Guest
	span      Span
	stay      StayType
	guests    int
	rooms     int
	status    Status
	quote     Quote
	payment   Payment
	createdAt time.Time
	updatedAt time.Time
}

type NewParams struct {
	VillaID uuid.UUID
	UserID  uuid.UUID
	Guest   Guest
	Span    Span
	Stay    StayType
	Guests  int
	Rooms   int
	Quote   Quote
	Method  PaymentMethod
}

// NewBooking creates a confirmed booking. today is the local business date;
// a span starting before it is rejected.
func NewBooking(p NewParams, today Date, now time.Time) (*Booking, error) {
	if p.Span.Start().Before(today) {
		return nil, ErrPastDate
	}
	if p.Guests < 1 || p.Rooms < 1 {
		return nil, ErrInvalidGuestCount
	}
	if p.Quote.Total <= 0 {
		return nil, ErrInvalidRate
	}

	return &Booking{
		id:        uuid.New(),
		villaID:   p.VillaID,
		userID:    p.UserID,
		guest:     p.Guest,
		span:      p.Span,
		stay:      p.Stay,
		guests:    p.Guests,
		rooms:     p.Rooms,
		status:    StatusConfirmed,
		quote:     p.Quote,
		payment:   NewPayment(p.Method, p.Quote.Total, now),
		createdAt: now,
		updatedAt: now,
	}, nil
}

type ReconstructParams struct {
	ID        uuid.UUID
	VillaID   uuid.UUID
	UserID    uuid.UUID
	Guest     Guest
	Span      Span
	Stay      StayType
	Guests    int
	Rooms     int
	Status    Status
	Quote     Quote
	Payment   Payment
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:        p.ID,
		villaID:   p.VillaID,
		userID:    p.UserID,
		guest:     p.Guest,
		span:      p.Span,
		stay:      p.Stay,
		guests:    p.Guests,
		rooms:     p.Rooms,
		status:    p.Status,
		quote:     p.Quote,
		payment:   p.Payment,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) VillaID() uuid.UUID   { return b.villaID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Guest() Guest         { return b.guest }
func (b *Booking) Span() Span           { return b.span }
func (b *Booking) Stay() StayType       { return b.stay }
func (b *Booking) Guests() int          { return b.guests }
func (b *Booking) Rooms() int           { return b.rooms }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Quote() Quote         { return b.quote }
func (b *Booking) Payment() Payment     { return b.payment }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// EffectiveStatus applies lazy completion: a confirmed booking whose last
// day is strictly before today reads as completed.
func (b *Booking) EffectiveStatus(today Date) Status {
	return EffectiveStatus(b.status, b.span.End(), today)
}

func EffectiveStatus(stored Status, end Date, today Date) Status {
	if stored == StatusConfirmed && end.Before(today) {
		return StatusCompleted
	}
	return stored
}

func (b *Booking) Cancel(today Date, now time.Time) error {
	return b.transition(StatusCancelled, today, now)
}

func (b *Booking) Complete(today Date, now time.Time) error {
	return b.transition(StatusCompleted, today, now)
}

func (b *Booking) transition(to Status, today Date, now time.Time) error {
	current := b.EffectiveStatus(today)
	if current != StatusConfirmed {
		return ErrInvalidTransition
	}
	if to != StatusCancelled && to != StatusCompleted {
		return ErrInvalidTransition
	}
	b.status = to
	b.updatedAt = now
	return nil
}
