package user

import (
	"regexp"
	"strings"

	"villanest/internal/pkg/errs"
)

var (
	ErrInvalidEmail       = errs.New("invalid email format")
	ErrInvalidRole        = errs.New("invalid role")
	ErrPasswordTooWeak    = errs.New("password must be at least 8 characters long")
	ErrInvalidDisplayName = errs.New("display name must be 1-80 characters")
)

const (
	MinPasswordLength    = 8
	MaxDisplayNameLength = 80
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address; uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > MaxDisplayNameLength {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: s}, nil
}

func (d DisplayName) Value() string {
	return d.value
}
