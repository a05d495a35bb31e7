package review

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EligibilityInput struct {
	VillaID uuid.UUID
	UserID  uuid.UUID
	Now     time.Time
}

// EligibilityChecker answers whether the user has stayed at the villa.
type EligibilityChecker interface {
	CanPostReview(ctx context.Context, input EligibilityInput) error
}

// Summary is the derived rating of a villa. AverageTenths is the mean in
// tenths of a star (43 means 4.3) and is nil when there are no ratings.
type Summary struct {
	Count         int
	AverageTenths *int64
}

func (s Summary) Average() *float64 {
	if s.AverageTenths == nil {
		return nil
	}
	avg := float64(*s.AverageTenths) / 10
	return &avg
}

// Summarize averages ratings rounded half-up to one decimal.
// Callers pass the ratings of visible reviews only.
func Summarize(ratings []int) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	n := int64(len(ratings))
	// round(sum/n, 1) == floor((20*sum + n) / (2n)) / 10
	tenths := (20*sum + n) / (2 * n)
	return Summary{Count: len(ratings), AverageTenths: &tenths}
}
