//go:build unit

package queries_test

import (
	"context"
	"errors"

	"villanest/internal/infra"
	"villanest/internal/usecase/shared"
	sharedmock "villanest/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	errNotFound         = infra.WrapRepoErr("row not found", pgx.ErrNoRows)
)

// settleMocks wires the write side touched by lazy booking completion.
type settleMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
}

func newSettleMocks(ctrl *gomock.Controller) *settleMocks {
	m := &settleMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
	}
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

func (m *settleMocks) expectWithin() *gomock.Call {
	return m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}
