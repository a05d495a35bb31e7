package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
UPDATE notification_jobs
SET status = 'processing', attempts = attempts + 1, updated_at = now()
WHERE id IN (
    SELECT j.id FROM notification_jobs j
    WHERE (j.status = 'pending' AND j.run_at <= $1::timestamptz)
       OR (j.status = 'processing' AND j.updated_at < $2::timestamptz)
    ORDER BY j.run_at
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
`

type ClaimDueNotificationJobsParams struct {
	Now         pgtype.Timestamptz `json:"now"`
	StaleBefore pgtype.Timestamptz `json:"stale_before"`
	BatchSize   int32              `json:"batch_size"`
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.StaleBefore, arg.BatchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NotificationJobs{}
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)
`

type CreateNotificationJobParams struct {
	Kind    string             `json:"kind"`
	Topic   string             `json:"topic"`
	Payload []byte             `json:"payload"`
	RunAt   pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
	)
	return err
}

const releaseNotificationJobs = `-- name: ReleaseNotificationJobs :exec
UPDATE notification_jobs
SET status = 'pending', attempts = attempts - 1, updated_at = now()
WHERE id = ANY($1::uuid[]) AND status = 'processing'
`

func (q *Queries) ReleaseNotificationJobs(ctx context.Context, db DBTX, ids []uuid.UUID) error {
	_, err := db.Exec(ctx, releaseNotificationJobs, ids)
	return err
}

const markNotificationFailed = `-- name: MarkNotificationFailed :exec
UPDATE notification_jobs
SET status = 'failed', last_error = $2, updated_at = now()
WHERE id = $1
`

type MarkNotificationFailedParams struct {
	ID        uuid.UUID   `json:"id"`
	LastError pgtype.Text `json:"last_error"`
}

func (q *Queries) MarkNotificationFailed(ctx context.Context, db DBTX, arg MarkNotificationFailedParams) error {
	_, err := db.Exec(ctx, markNotificationFailed, arg.ID, arg.LastError)
	return err
}

const markNotificationSent = `-- name: MarkNotificationSent :exec
UPDATE notification_jobs
SET status = 'sent', last_error = NULL, updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkNotificationSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markNotificationSent, id)
	return err
}
