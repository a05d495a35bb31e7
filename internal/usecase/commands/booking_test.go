//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"villanest/internal/domain/booking"
	"villanest/internal/domain/user"
	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/shared"
	"villanest/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPolicy(sameDayTurnover bool) shared.BookingPolicy {
	return shared.BookingPolicy{
		Checker:           booking.NewChecker(booking.PolicyFor(sameDayTurnover)),
		DefaultHourlyRate: booking.DefaultHourlyRate,
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	today := booking.DateOf(now)
	userID := uuid.New()

	testCases := []struct {
		name      string
		input     func(villaID uuid.UUID) commands.CreateBookingInput
		setupMock func(m *txMocks, villaID uuid.UUID)
		wantTotal int64
		errIs     error
	}{
		{
			name: "success: three nights priced with tax and queued confirmation",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).WithNights(today.AddDays(10), 3).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).
					Return(builder.NewVillaBuilder().WithID(villaID).BuildSnapshot(), nil)
				gomock.InOrder(
					m.bookings.EXPECT().LockVilla(gomock.Any(), m.db, villaID).Return(nil),
					m.bookings.EXPECT().ConfirmedSpans(gomock.Any(), m.db, villaID).Return(nil, nil),
					m.bookings.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
							assert.Equal(t, userID, b.UserID())
							assert.Equal(t, booking.StatusConfirmed, b.Status())
							return b.ID(), nil
						}),
				)
				m.notifications.EXPECT().
					CreateJob(gomock.Any(), m.db, shared.NotificationKindEmail, shared.TopicBookingConfirmed, gomock.Any(), now).
					DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
						var msg shared.BookingConfirmation
						require.NoError(t, json.Unmarshal(payload, &msg))
						assert.Equal(t, "Casa Azul", msg.VillaName)
						assert.Equal(t, int64(35400), msg.TotalPrice)
						assert.Equal(t, "guest@example.com", msg.GuestEmail)
						assert.Empty(t, msg.StartTime)
						return nil
					})
			},
			wantTotal: 35400,
		},
		{
			name: "success: hourly booking falls back to the default hourly rate",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).WithHours(today, 14, 17).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).
					Return(builder.NewVillaBuilder().WithID(villaID).BuildSnapshot(), nil)
				m.bookings.EXPECT().LockVilla(gomock.Any(), m.db, villaID).Return(nil)
				m.bookings.EXPECT().ConfirmedSpans(gomock.Any(), m.db, villaID).Return([]booking.Span{
					builder.NewBookingBuilder().WithHours(today, 17, 19).BuildSpan(),
				}, nil)
				m.bookings.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(uuid.New(), nil)
				m.notifications.EXPECT().CreateJob(gomock.Any(), m.db, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			// 1500 * 3 * 1.18
			wantTotal: 5310,
		},
		{
			name: "success: missing guest details come from the account",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				in := builder.NewBookingBuilder().WithVillaID(villaID).BuildInput()
				in.GuestName, in.GuestEmail = "", ""
				return in
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).
					Return(builder.NewVillaBuilder().WithID(villaID).BuildSnapshot(), nil)
				m.reads.EXPECT().UserByID(gomock.Any(), userID).
					Return(builder.NewUserBuilder().WithID(userID).WithEmail("owner@example.com").BuildSnapshot(), nil)
				m.bookings.EXPECT().LockVilla(gomock.Any(), m.db, villaID).Return(nil)
				m.bookings.EXPECT().ConfirmedSpans(gomock.Any(), m.db, villaID).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
						assert.Equal(t, booking.Guest{Name: "Asha Rao", Email: "owner@example.com"}, b.Guest())
						return b.ID(), nil
					})
				m.notifications.EXPECT().CreateJob(gomock.Any(), m.db, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal: 35400,
		},
		{
			name: "error: start date in the past never opens a transaction",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).WithNights(today.AddDays(-1), 2).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {},
			errIs:     booking.ErrPastDate,
		},
		{
			name: "error: stay longer than the cap never opens a transaction",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).WithNights(today.AddDays(1), booking.DefaultMaxNights+1).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {},
			errIs:     booking.ErrStayTooLong,
		},
		{
			name: "error: unknown villa",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).Return(nil, errNotFound)
			},
			errIs: commands.ErrVillaNotFound,
		},
		{
			name: "error: inactive villa",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).
					Return(builder.NewVillaBuilder().WithID(villaID).AsInactive().BuildSnapshot(), nil)
			},
			errIs: commands.ErrVillaNotFound,
		},
		{
			name: "error: overlapping confirmed stay",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).WithNights(today.AddDays(10), 3).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).
					Return(builder.NewVillaBuilder().WithID(villaID).BuildSnapshot(), nil)
				m.bookings.EXPECT().LockVilla(gomock.Any(), m.db, villaID).Return(nil)
				m.bookings.EXPECT().ConfirmedSpans(gomock.Any(), m.db, villaID).Return([]booking.Span{
					builder.NewBookingBuilder().WithNights(today.AddDays(12), 2).BuildSpan(),
				}, nil)
			},
			errIs: booking.ErrUnavailable,
		},
		{
			name: "error: lock failure aborts",
			input: func(villaID uuid.UUID) commands.CreateBookingInput {
				return builder.NewBookingBuilder().WithVillaID(villaID).BuildInput()
			},
			setupMock: func(m *txMocks, villaID uuid.UUID) {
				m.expectWithin()
				m.reads.EXPECT().VillaByID(gomock.Any(), villaID).
					Return(builder.NewVillaBuilder().WithID(villaID).BuildSnapshot(), nil)
				m.bookings.EXPECT().LockVilla(gomock.Any(), m.db, villaID).Return(errDBConnectionLost)
			},
			errIs: errDBConnectionLost,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			villaID := uuid.New()
			tc.setupMock(m, villaID)

			cmds := commands.NewBookingCommands(m.uow, newPolicy(false), clock.NewMockClock(now))
			result, err := cmds.Create(ctx, userID, tc.input(villaID))

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEqual(t, uuid.Nil, result.BookingID)
			assert.Equal(t, tc.wantTotal, result.Quote.Total)
		})
	}
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ownerID := uuid.New()

	testCases := []struct {
		name      string
		actorID   uuid.UUID
		actorRole user.Role
		stored    *builder.BookingBuilder
		findErr   error
		errIs     error
	}{
		{
			name:      "success: owner cancels",
			actorID:   ownerID,
			actorRole: user.RoleUser,
			stored:    builder.NewBookingBuilder().WithUserID(ownerID),
		},
		{
			name:      "success: admin cancels someone else's booking",
			actorID:   uuid.New(),
			actorRole: user.RoleAdmin,
			stored:    builder.NewBookingBuilder().WithUserID(ownerID),
		},
		{
			name:      "error: another user",
			actorID:   uuid.New(),
			actorRole: user.RoleUser,
			stored:    builder.NewBookingBuilder().WithUserID(ownerID),
			errIs:     commands.ErrBookingAccess,
		},
		{
			name:      "error: already cancelled",
			actorID:   ownerID,
			actorRole: user.RoleUser,
			stored:    builder.NewBookingBuilder().WithUserID(ownerID).WithStatus(booking.StatusCancelled),
			errIs:     booking.ErrInvalidTransition,
		},
		{
			name:      "error: stay already ended",
			actorID:   ownerID,
			actorRole: user.RoleUser,
			stored:    builder.NewBookingBuilder().WithUserID(ownerID).WithNights(booking.DateOf(now).AddDays(-5), 2),
			errIs:     booking.ErrInvalidTransition,
		},
		{
			name:      "error: booking not found",
			actorID:   ownerID,
			actorRole: user.RoleUser,
			findErr:   errNotFound,
			errIs:     commands.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			bookingID := uuid.New()
			m.expectWithin()

			if tc.findErr != nil {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), m.db, bookingID).Return(nil, tc.findErr)
			} else {
				b := tc.stored.BuildDomain()
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), m.db, bookingID).Return(b, nil)
				if tc.errIs == nil {
					m.bookings.EXPECT().UpdateStatus(gomock.Any(), m.db, b, booking.StatusConfirmed).
						DoAndReturn(func(_ context.Context, _ any, b *booking.Booking, _ booking.Status) error {
							assert.Equal(t, booking.StatusCancelled, b.Status())
							return nil
						})
				}
			}

			cmds := commands.NewBookingCommands(m.uow, newPolicy(false), clock.NewMockClock(now))
			err := cmds.Cancel(ctx, tc.actorID, tc.actorRole, bookingID)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingCommands_SetStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("admin completes a confirmed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		b := builder.NewBookingBuilder().BuildDomain()

		m.expectWithin()
		m.bookings.EXPECT().FindForUpdate(gomock.Any(), m.db, b.ID()).Return(b, nil)
		m.bookings.EXPECT().UpdateStatus(gomock.Any(), m.db, b, booking.StatusConfirmed).Return(nil)

		cmds := commands.NewBookingCommands(m.uow, newPolicy(false), clock.NewMockClock(now))
		require.NoError(t, cmds.SetStatus(ctx, b.ID(), booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("moving back to confirmed is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()

		m.expectWithin()
		m.bookings.EXPECT().FindForUpdate(gomock.Any(), m.db, b.ID()).Return(b, nil)

		cmds := commands.NewBookingCommands(m.uow, newPolicy(false), clock.NewMockClock(now))
		assert.ErrorIs(t, cmds.SetStatus(ctx, b.ID(), booking.StatusConfirmed), booking.ErrInvalidTransition)
	})
}
