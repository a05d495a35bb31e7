package readstore

//go:generate mockgen -source=review.go -destination=../../../tests/mock/readstore/review.go -package=readstoremock

import (
	"context"
	"time"

	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewViewQueries interface {
	GetReviewViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewByIDRow, error)
	ListVisibleReviewsByVillaFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVisibleReviewsByVillaFirstPageParams) ([]sqlc.ListVisibleReviewsByVillaFirstPageRow, error)
	ListVisibleReviewsByVillaKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVisibleReviewsByVillaKeysetParams) ([]sqlc.ListVisibleReviewsByVillaKeysetRow, error)
	ListReviewViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewViewsParams) ([]sqlc.ListReviewViewsRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) FindVisibleByVillaFirstPage(ctx context.Context, villaID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListVisibleReviewsByVillaFirstPageParams{
		VillaID: villaID,
		Limit:   limit,
	}

	rows, err := r.queries.ListVisibleReviewsByVillaFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by villa", err)
	}
	return mapVillaFirstPageRows(rows), nil
}

func (r *ReviewReadStore) FindVisibleByVillaKeyset(ctx context.Context, villaID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListVisibleReviewsByVillaKeysetParams{
		VillaID:   villaID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	}

	rows, err := r.queries.ListVisibleReviewsByVillaKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by villa", err)
	}
	return mapVillaKeysetRows(rows), nil
}

func (r *ReviewReadStore) List(ctx context.Context, filter queries.ReviewFilter, page queries.Page) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewViewsParams{
		VillaID: pgconv.UUIDPtrToPgtype(filter.VillaID),
		Lim:     pgconv.IntToInt32(page.Limit),
		Off:     pgconv.IntToInt32(page.Offset),
	}
	if filter.Visible != nil {
		params.Visible = pgtype.Bool{Bool: *filter.Visible, Valid: true}
	}

	rows, err := r.queries.ListReviewViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	views := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReviewView(sqlc.GetReviewViewByIDRow(row)))
	}
	return views, nil
}

func toReviewView(row sqlc.GetReviewViewByIDRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:        row.ID,
		VillaID:   row.VillaID,
		VillaName: row.VillaName,
		UserID:    row.UserID,
		UserName:  row.UserName,
		Rating:    row.Rating,
		Comment:   row.Comment,
		IsVisible: row.IsVisible,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapVillaFirstPageRows(rows []sqlc.ListVisibleReviewsByVillaFirstPageRow) []*queries.ReviewListItem {
	out := make([]*queries.ReviewListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, &queries.ReviewListItem{
			ID:        r.ID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: pgconv.TimeFromPgtype(r.CreatedAt),
		})
	}
	return out
}

func mapVillaKeysetRows(rows []sqlc.ListVisibleReviewsByVillaKeysetRow) []*queries.ReviewListItem {
	out := make([]*queries.ReviewListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, &queries.ReviewListItem{
			ID:        r.ID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: pgconv.TimeFromPgtype(r.CreatedAt),
		})
	}
	return out
}
