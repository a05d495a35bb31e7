//go:build unit

package user_test

import (
	"strings"
	"testing"

	"villanest/internal/domain/user"
	"villanest/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("guest@example.com")
		name, _ := user.NewDisplayName("Asha Rao")
		expected := user.NewUser(email, name, "hashed_password", actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.Equal(t, "guest@example.com", actual.Email().Value())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case is folded",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Asha@Example.COM ") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "invalid format",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("display name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("   ") },
				errIs:  user.ErrInvalidDisplayName,
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("ä", user.MaxDisplayNameLength)) },
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", user.MaxDisplayNameLength+1)) },
				errIs:  user.ErrInvalidDisplayName,
			},
		})
	})
}

func TestEmail_Folding(t *testing.T) {
	email, err := user.NewEmail("  Asha@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", email.Value())
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.NewRole("operator")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials("guest@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", creds.Password().Value())

	_, err = user.NewCredentials("guest@example.com", "short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
