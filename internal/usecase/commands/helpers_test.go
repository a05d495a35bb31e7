//go:build unit

package commands_test

import (
	"context"
	"errors"

	"villanest/internal/infra"
	"villanest/internal/usecase/shared"
	sharedmock "villanest/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	errNotFound         = infra.WrapRepoErr("row not found", pgx.ErrNoRows)
	errDuplicate        = infra.WrapRepoErr("duplicate row", &pgconn.PgError{Code: "23505"})
)

// txMocks bundles a mocked transaction with its repositories.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	villas        *sharedmock.MockVillaRepository
	reviews       *sharedmock.MockReviewRepository
	ratings       *sharedmock.MockRatingRepository
	favorites     *sharedmock.MockFavoriteRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	db            *mockDBTX
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		villas:        sharedmock.NewMockVillaRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		ratings:       sharedmock.NewMockRatingRepository(ctrl),
		favorites:     sharedmock.NewMockFavoriteRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		db:            &mockDBTX{},
	}

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Villas().Return(m.villas).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().Ratings().Return(m.ratings).AnyTimes()
	m.tx.EXPECT().Favorites().Return(m.favorites).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	return m
}

// expectWithin runs the transaction body against the mocked Tx.
func (m *txMocks) expectWithin() *gomock.Call {
	return m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the repository mocks instead.")
}
