package validation

import (
	"log/slog"
	"strings"
	"sync"

	"villanest/internal/domain/booking"
	"villanest/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagHourTime = "hourtime"
	TagISODate  = "isodate"
)

var ErrEngineUnavailable = errs.New("binding engine is not go-playground/validator")

var once sync.Once

// Register installs the custom binding tags on gin's validator engine.
// Safe to call more than once.
func Register() error {
	var err error
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = ErrEngineUnavailable
			return
		}
		if err = v.RegisterValidation(TagHourTime, validateHourTime); err != nil {
			return
		}
		if err = v.RegisterValidation(TagISODate, validateISODate); err != nil {
			return
		}
		slog.Info("Binding validators registered", "tags", []string{TagHourTime, TagISODate})
	})
	return err
}

// validateHourTime accepts whole hours "HH:00"; empty values are left to
// required/omitempty.
func validateHourTime(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := booking.ParseHour(s)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := booking.ParseDate(s)
	return err == nil
}
