package repository

import (
	"context"
	"time"

	"washclub/internal/domain/wash"
	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// The quota check and the increment happen in one conditional UPDATE
// so two concurrent redemptions cannot both consume the last unit.
const consumeInAndOutQuotaSQL = `
UPDATE subscriptions s
SET in_and_out_washes_used = s.in_and_out_washes_used + 1,
    updated_at = $2
FROM plans p
WHERE s.id = $1
  AND s.plan_id = p.id
  AND s.status = 'active'
  AND s.end_date >= $2
  AND s.in_and_out_washes_used < COALESCE(p.in_and_out_quota, 0)`

const consumeOutsideOnlyQuotaSQL = `
UPDATE subscriptions s
SET outside_only_washes_used = s.outside_only_washes_used + 1,
    updated_at = $2
FROM plans p
WHERE s.id = $1
  AND s.plan_id = p.id
  AND s.status = 'active'
  AND s.end_date >= $2
  AND s.outside_only_washes_used < COALESCE(p.outside_only_quota, 0)`

type SubscriptionRepository struct{}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

func (r *SubscriptionRepository) ConsumeQuota(ctx context.Context, tx db.DBTX, subscriptionID uuid.UUID, washType wash.Type, now time.Time) (int64, error) {
	sql := consumeInAndOutQuotaSQL
	if washType == wash.TypeOutsideOnly {
		sql = consumeOutsideOnlyQuotaSQL
	}

	tag, err := tx.Exec(ctx, sql, pgconv.UUIDToPgtype(subscriptionID), pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to consume subscription quota", err)
	}
	return tag.RowsAffected(), nil
}
