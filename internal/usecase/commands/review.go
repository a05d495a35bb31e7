package commands

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review.go -package=commandsmock

import (
	"context"
	"log/slog"

	"villanest/internal/domain/booking"
	domreview "villanest/internal/domain/review"
	"villanest/internal/infra"
	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/queries"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateReview     = errs.New("duplicate review for villa")
	ErrReviewNotFoundWrite = errs.New("review not found")
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
	Summary  domreview.Summary
}

type CreateReviewRequest struct {
	VillaID uuid.UUID
	Rating  int
	Comment string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	// SetVisibility hides or shows a review and refreshes the villa rating.
	SetVisibility(ctx context.Context, reviewID uuid.UUID, visible bool) (domreview.Summary, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.VillaCache
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, cache queries.VillaCache, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	now := uc.clock.Now()

	var result CreateReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		villa, derr := tx.Reads().VillaByID(ctx, req.VillaID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrVillaNotFound
			}
			return derr
		}
		if !villa.IsActive {
			return ErrVillaNotFound
		}

		author, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		rev, derr := domreview.NewReview(req.VillaID, userID, author.DisplayName, req.Rating, req.Comment, now)
		if derr != nil {
			return derr
		}

		if derr = uc.checkEligibility(ctx, tx.Reads(), domreview.EligibilityInput{VillaID: req.VillaID, UserID: userID, Now: now}); derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}

		summary, derr := tx.Ratings().Recalculate(ctx, tx.DB(), req.VillaID)
		if derr != nil {
			return derr
		}
		result = CreateReviewResult{ReviewID: id, Summary: summary}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, req.VillaID)
	return &result, nil
}

func (uc *reviewUseCaseImpl) SetVisibility(ctx context.Context, reviewID uuid.UUID, visible bool) (domreview.Summary, error) {
	var (
		summary domreview.Summary
		villaID uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reviews().FindForUpdate(ctx, tx.DB(), reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		villaID = rev.VillaID()

		if rev.SetVisibility(visible, uc.clock.Now()) {
			if derr = tx.Reviews().UpdateVisibility(ctx, tx.DB(), rev); derr != nil {
				return derr
			}
		}

		// recomputed even when unchanged; the aggregate is idempotent
		summary, derr = tx.Ratings().Recalculate(ctx, tx.DB(), villaID)
		return derr
	})
	if err != nil {
		return domreview.Summary{}, err
	}

	slog.Info("review visibility set", "review_id", reviewID.String(), "visible", visible, "reviews_count", summary.Count)
	uc.cache.Invalidate(ctx, villaID)
	return summary, nil
}

// CanPostReview implements domreview.EligibilityChecker outside a transaction.
func (uc *reviewUseCaseImpl) CanPostReview(ctx context.Context, input domreview.EligibilityInput) error {
	return uc.checkEligibility(ctx, uc.uow.CommandReads(), input)
}

func (uc *reviewUseCaseImpl) checkEligibility(ctx context.Context, reads shared.CommandReads, input domreview.EligibilityInput) error {
	ok, err := reads.HasCompletedStay(ctx, input.VillaID, input.UserID, booking.DateOf(input.Now))
	if err != nil {
		return err
	}
	if !ok {
		return domreview.ErrStayNotCompleted
	}
	return nil
}

var _ domreview.EligibilityChecker = (*reviewUseCaseImpl)(nil)
