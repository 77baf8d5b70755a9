package repository

import (
	"context"
	"time"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4, $5)`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, insertNotificationJobSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		kind,
		topic,
		payload,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification job", err)
	}
	return nil
}
