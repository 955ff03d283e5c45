package repository

import (
	"context"

	"rentalhub/internal/infra"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
	"rentalhub/internal/usecase/shared"

	"go.opentelemetry.io/otel/propagation"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
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

// CreateJob stores the job with the caller's trace context so the relay can continue the trace.
func (r *NotificationRepository) CreateJob(ctx context.Context, job shared.NotificationJob) error {
	carrier := propagation.MapCarrier{}
	propagation.TraceContext{}.Inject(ctx, carrier)

	params := sqlc.CreateNotificationJobParams{
		Kind:        job.Kind,
		Topic:       job.Topic,
		AggregateID: job.AggregateID,
		Payload:     job.Payload,
		Traceparent: carrier.Get("traceparent"),
		RunAt:       pgconv.TimeToPgtype(job.RunAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
