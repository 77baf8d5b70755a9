package repository

import (
	"context"
	"time"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const markPurchaseUsedSQL = `
UPDATE one_time_purchases
SET used = TRUE, used_at = $2
WHERE id = $1 AND used = FALSE AND status = 'completed'`

type PurchaseRepository struct{}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

// MarkUsed is the one-shot consumption gate: the flip only succeeds
// while the purchase is still unused.
func (r *PurchaseRepository) MarkUsed(ctx context.Context, tx db.DBTX, purchaseID uuid.UUID, usedAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, markPurchaseUsedSQL, pgconv.UUIDToPgtype(purchaseID), pgconv.TimeToPgtype(usedAt))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark purchase used", err)
	}
	return tag.RowsAffected(), nil
}
