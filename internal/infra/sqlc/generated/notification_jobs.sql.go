// source: notification_jobs.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, aggregate_id, payload, traceparent, run_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	Traceparent string             `json:"traceparent"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.AggregateID,
		arg.Payload,
		arg.Traceparent,
		arg.RunAt,
	)
	return err
}

const fetchPendingNotificationJobs = `-- name: FetchPendingNotificationJobs :many
SELECT id, kind, topic, aggregate_id, payload, traceparent, run_at, attempts
FROM notification_jobs
WHERE status = 'pending' AND run_at <= now()
ORDER BY run_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED
`

type FetchPendingNotificationJobsRow struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	Traceparent string             `json:"traceparent"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Attempts    int32              `json:"attempts"`
}

func (q *Queries) FetchPendingNotificationJobs(ctx context.Context, db DBTX, limit int32) ([]FetchPendingNotificationJobsRow, error) {
	rows, err := db.Query(ctx, fetchPendingNotificationJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FetchPendingNotificationJobsRow
	for rows.Next() {
		var i FetchPendingNotificationJobsRow
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.AggregateID,
			&i.Payload,
			&i.Traceparent,
			&i.RunAt,
			&i.Attempts,
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

const markNotificationJobFailed = `-- name: MarkNotificationJobFailed :exec
UPDATE notification_jobs
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3::int THEN 'failed' ELSE 'pending' END,
    run_at = now() + make_interval(secs => 5 * (attempts + 1)),
    updated_at = now()
WHERE id = $1
`

type MarkNotificationJobFailedParams struct {
	ID          uuid.UUID   `json:"id"`
	LastError   pgtype.Text `json:"last_error"`
	MaxAttempts int32       `json:"max_attempts"`
}

func (q *Queries) MarkNotificationJobFailed(ctx context.Context, db DBTX, arg MarkNotificationJobFailedParams) error {
	_, err := db.Exec(ctx, markNotificationJobFailed, arg.ID, arg.LastError, arg.MaxAttempts)
	return err
}

const markNotificationJobsPublished = `-- name: MarkNotificationJobsPublished :exec
UPDATE notification_jobs
SET status = 'published', attempts = attempts + 1, updated_at = now()
WHERE id = ANY($1::uuid[])
`

func (q *Queries) MarkNotificationJobsPublished(ctx context.Context, db DBTX, ids []uuid.UUID) error {
	_, err := db.Exec(ctx, markNotificationJobsPublished, ids)
	return err
}
