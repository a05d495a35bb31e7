package queries

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review.go -package=queriesmock

import (
	"context"
	"time"

	"villanest/internal/infra"
	"villanest/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewFilter struct {
	Visible *bool
	VillaID *uuid.UUID
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindVisibleByVillaFirstPage(ctx context.Context, villaID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindVisibleByVillaKeyset(ctx context.Context, villaID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	List(ctx context.Context, filter ReviewFilter, page Page) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// ListByVilla returns only visible reviews, newest first.
	ListByVilla(ctx context.Context, villaID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	ListForAdmin(ctx context.Context, filter ReviewFilter, page Page) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByVilla(ctx context.Context, villaID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor.isFirstPage() {
		rows, err = q.repo.FindVisibleByVillaFirstPage(ctx, villaID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindVisibleByVillaKeyset(ctx, villaID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) ListForAdmin(ctx context.Context, filter ReviewFilter, page Page) ([]*ReviewView, error) {
	return q.repo.List(ctx, filter, page.normalize())
}
