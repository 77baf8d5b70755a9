package repository

import (
	"context"
	"time"

	"washclub/internal/domain/code"
	"washclub/internal/domain/wash"
	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertCodeSQL = `
INSERT INTO verification_codes
	(id, code, user_id, wash_type, status, subscription_id, purchase_id, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (code) DO NOTHING`

const findCodeForUpdateSQL = `
SELECT id, code, user_id, wash_type, status, subscription_id, purchase_id,
       partner_id, expires_at, started_at, completed_at, created_at
FROM verification_codes
WHERE code = $1
FOR UPDATE`

const markCodeExpiredSQL = `
UPDATE verification_codes
SET status = 'expired'
WHERE id = $1 AND status = 'pending'`

const expirePendingBySubscriptionSQL = `
UPDATE verification_codes
SET status = 'expired'
WHERE subscription_id = $1 AND status = 'pending'`

const expirePendingByPurchaseSQL = `
UPDATE verification_codes
SET status = 'expired'
WHERE purchase_id = $1 AND status = 'pending'`

const markCodeInProgressSQL = `
UPDATE verification_codes
SET status = 'in_progress', partner_id = $2, started_at = $3
WHERE id = $1 AND status = 'pending'`

const markCodeCompletedSQL = `
UPDATE verification_codes
SET status = 'completed', partner_id = $2, completed_at = $3
WHERE id = $1 AND status IN ('pending', 'in_progress')`

type CodeRepository struct{}

func NewCodeRepository() *CodeRepository {
	return &CodeRepository{}
}

// Create inserts a new PENDING code. Zero affected rows means the
// generated value collided with an existing code.
func (r *CodeRepository) Create(ctx context.Context, tx db.DBTX, vc *code.VerificationCode) (int64, error) {
	tag, err := tx.Exec(ctx, insertCodeSQL,
		pgconv.UUIDToPgtype(vc.ID()),
		vc.Code(),
		pgconv.UUIDToPgtype(vc.UserID()),
		vc.WashType().String(),
		vc.Status().String(),
		pgconv.UUIDPtrToPgtype(vc.SubscriptionID()),
		pgconv.UUIDPtrToPgtype(vc.PurchaseID()),
		pgconv.TimeToPgtype(vc.ExpiresAt()),
		pgconv.TimeToPgtype(vc.CreatedAt()),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert verification code", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CodeRepository) FindByValueForUpdate(ctx context.Context, tx db.DBTX, codeValue string) (*code.VerificationCode, error) {
	var (
		id, userID, subID, purID, partnerID pgtype.UUID
		value, washType, status             string
		expiresAt, createdAt                pgtype.Timestamptz
		startedAt, completedAt              pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findCodeForUpdateSQL, codeValue).Scan(
		&id, &value, &userID, &washType, &status,
		&subID, &purID, &partnerID,
		&expiresAt, &startedAt, &completedAt, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find verification code", err)
	}

	washT, err := wash.NewType(washType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid wash type in storage", err, infra.KindDBFailure)
	}

	return code.Reconstruct(
		uuid.UUID(id.Bytes),
		value,
		uuid.UUID(userID.Bytes),
		washT,
		code.Status(status),
		pgconv.UUIDPtrFromPgtype(subID),
		pgconv.UUIDPtrFromPgtype(purID),
		pgconv.UUIDPtrFromPgtype(partnerID),
		expiresAt.Time,
		pgconv.TimePtrFromPgtype(startedAt),
		pgconv.TimePtrFromPgtype(completedAt),
		createdAt.Time,
	), nil
}

func (r *CodeRepository) MarkExpired(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markCodeExpiredSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire verification code", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CodeRepository) ExpirePendingBySubscription(ctx context.Context, tx db.DBTX, subscriptionID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, expirePendingBySubscriptionSQL, pgconv.UUIDToPgtype(subscriptionID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending codes for subscription", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CodeRepository) ExpirePendingByPurchase(ctx context.Context, tx db.DBTX, purchaseID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, expirePendingByPurchaseSQL, pgconv.UUIDToPgtype(purchaseID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending codes for purchase", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CodeRepository) MarkInProgress(ctx context.Context, tx db.DBTX, id uuid.UUID, partnerID uuid.UUID, startedAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, markCodeInProgressSQL,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDToPgtype(partnerID),
		pgconv.TimeToPgtype(startedAt),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to start verification code", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CodeRepository) MarkCompleted(ctx context.Context, tx db.DBTX, id uuid.UUID, partnerID uuid.UUID, completedAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, markCodeCompletedSQL,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDToPgtype(partnerID),
		pgconv.TimeToPgtype(completedAt),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete verification code", err)
	}
	return tag.RowsAffected(), nil
}
