//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"villanest/internal/domain/user"
	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockDBTX stands in for the transaction handed to repository methods.
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	loginAt := time.Date(2030, 6, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateLastLoginParams) bool {
				return arg.ID == testUserID && arg.LastLogin.Valid && arg.LastLogin.Time.Equal(loginAt)
			})).Return(tt.mockError)

			db := new(MockDBTX)
			repo := NewUserRepository(mockQueries, db)

			err := repo.UpdateLastLogin(context.Background(), db, testUserID, loginAt)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	email, err := user.NewEmail("asha@example.com")
	require.NoError(t, err)
	name, err := user.NewDisplayName("Asha Rao")
	require.NoError(t, err)
	u := user.NewUser(email, name, "hashed_password", time.Date(2030, 6, 15, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "success",
			mockError: nil,
		},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			returned := u.ID()
			if tt.mockError != nil {
				returned = uuid.Nil
			}
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateUserParams) bool {
				return arg.ID == u.ID() &&
					arg.Email == "asha@example.com" &&
					arg.DisplayName == "Asha Rao" &&
					arg.Role == user.RoleUser.String() &&
					arg.IsActive
			})).Return(returned, tt.mockError)

			db := new(MockDBTX)
			repo := NewUserRepository(mockQueries, db)

			id, err := repo.Create(context.Background(), db, u)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, u.ID(), id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
