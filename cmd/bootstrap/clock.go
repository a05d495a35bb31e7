package bootstrap

import (
	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock runs business dates in BOOKING_TIMEZONE.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
