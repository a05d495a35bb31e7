package villa

import "villanest/internal/pkg/errs"

var (
	ErrEmptyName       = errs.New("villa name is required")
	ErrEmptyLocation   = errs.New("villa location is required")
	ErrInvalidPrice    = errs.New("nightly price must be positive")
	ErrInvalidHourly   = errs.New("hourly price must be positive when set")
	ErrInvalidMedia    = errs.New("media items need a type of image or video and a url")
	ErrInvalidLocation = errs.New("coordinates out of range")
	ErrVillaInactive   = errs.New("villa is not active")
)
