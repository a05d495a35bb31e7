package repository

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// Job failure messages are truncated to keep the outbox row small.
	maxLastErrorLength = 500

	// ClaimLease is how long a job may stay in processing before another
	// dispatcher run takes it over. It outlasts a single scheduled run.
	ClaimLease = 10 * time.Minute
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationFailedParams) error
	ReleaseNotificationJobs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue moves up to limit due jobs to processing. Due means pending with
// run_at reached, or processing for longer than ClaimLease, which is what a
// run interrupted between claim and mark leaves behind. Rows locked by
// another dispatcher are skipped.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(now.Add(-ClaimLease)),
		BatchSize:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, reason string) error {
	err := r.queries.MarkNotificationFailed(ctx, tx, sqlc.MarkNotificationFailedParams{
		ID:        jobID,
		LastError: pgtype.Text{String: truncateReason(reason, maxLastErrorLength), Valid: true},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification failed", err)
	}
	return nil
}

// Release returns claimed jobs that were never attempted to pending.
func (r *NotificationRepository) Release(ctx context.Context, tx sqlc.DBTX, jobIDs []uuid.UUID) error {
	if len(jobIDs) == 0 {
		return nil
	}
	if err := r.queries.ReleaseNotificationJobs(ctx, tx, jobIDs); err != nil {
		return infra.WrapRepoErr("failed to release notification jobs", err)
	}
	return nil
}

// truncateReason cuts reason to at most n bytes without splitting a rune.
// Invalid sequences are replaced first since text columns reject them.
func truncateReason(reason string, n int) string {
	reason = strings.ToValidUTF8(reason, "\uFFFD")
	if len(reason) <= n {
		return reason
	}
	for n > 0 && !utf8.RuneStart(reason[n]) {
		n--
	}
	return reason[:n]
}
