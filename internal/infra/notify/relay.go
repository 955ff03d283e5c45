package notify

import (
	"context"
	"log/slog"
	"time"

	"rentalhub/internal/infra/db"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/config"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
)

const maxAttempts = 5

type JobQueries interface {
	FetchPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.FetchPendingNotificationJobsRow, error)
	MarkNotificationJobsPublished(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Relay publishes committed reservation events from notification_jobs to Kafka.
// Jobs are claimed with FOR UPDATE SKIP LOCKED, so several relays may run side by side.
type Relay struct {
	pool      db.TxBeginner
	queries   JobQueries
	writer    MessageWriter
	pollEvery time.Duration
	batchSize int
}

func NewRelay(pool db.TxBeginner, queries JobQueries, writer MessageWriter, cfg config.KafkaConfig) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Relay{
		pool:      pool,
		queries:   queries,
		writer:    writer,
		pollEvery: cfg.PollInterval,
		batchSize: cfg.BatchSize,
	}
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Brokers,
		Balancer: &kafka.Hash{},
	})
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.PublishBatch(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "notification relay batch failed", "error", err)
				continue
			}
			if n > 0 {
				slog.DebugContext(ctx, "notification jobs published", "count", n)
			}
		}
	}
}

// PublishBatch claims up to batchSize due jobs and publishes them in one transaction.
func (r *Relay) PublishBatch(ctx context.Context) (int, error) {
	return db.RunInTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) (int, error) {
		jobs, err := r.queries.FetchPendingNotificationJobs(ctx, tx, int32(r.batchSize))
		if err != nil {
			return 0, errs.Wrap(err, "fetch pending notification jobs")
		}
		return r.publish(ctx, tx, jobs)
	})
}

// publish writes each job to its topic. A job that fails is rescheduled with backoff and
// the rest of the batch still goes out.
func (r *Relay) publish(ctx context.Context, tx sqlc.DBTX, jobs []sqlc.FetchPendingNotificationJobsRow) (int, error) {
	var published []uuid.UUID
	for _, job := range jobs {
		msgCtx := contextWithTraceparent(ctx, job.Traceparent)
		msg := kafka.Message{
			Topic: job.Topic,
			Key:   []byte(job.AggregateID.String()),
			Value: job.Payload,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(job.ID.String())},
				{Key: "event_type", Value: []byte(job.Kind)},
			},
		}
		msg.Headers = InjectTraceHeaders(msgCtx, msg.Headers)

		if err := r.writer.WriteMessages(ctx, msg); err != nil {
			slog.WarnContext(ctx, "notification publish failed",
				"job_id", job.ID,
				"attempts", job.Attempts+1,
				"error", err,
			)
			markErr := r.queries.MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
				ID:          job.ID,
				LastError:   pgconv.StringToPgtype(err.Error()),
				MaxAttempts: maxAttempts,
			})
			if markErr != nil {
				return 0, errs.Wrap(markErr, "mark notification job failed")
			}
			continue
		}
		published = append(published, job.ID)
	}

	if len(published) == 0 {
		return 0, nil
	}
	if err := r.queries.MarkNotificationJobsPublished(ctx, tx, published); err != nil {
		return 0, errs.Wrap(err, "mark notification jobs published")
	}
	return len(published), nil
}
