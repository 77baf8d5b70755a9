package repository

import (
	"context"
	"time"

	"washclub/internal/domain/payout"
	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertPayoutSQL = `
INSERT INTO payouts
	(id, partner_id, verification_id, amount_cents, currency, status, scheduled_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const findPayoutForUpdateSQL = `
SELECT id, partner_id, verification_id, amount_cents, currency, status,
       failure_reason, transfer_ref, scheduled_at, processed_at, created_at
FROM payouts
WHERE id = $1
FOR UPDATE`

const markPayoutProcessingSQL = `
UPDATE payouts
SET status = 'processing', failure_reason = NULL
WHERE id = $1 AND status IN ('pending', 'failed')`

const markPayoutPaidSQL = `
UPDATE payouts
SET status = 'paid', transfer_ref = $2, processed_at = $3
WHERE id = $1 AND status = 'processing'`

const markPayoutFailedSQL = `
UPDATE payouts
SET status = 'failed', failure_reason = $2, processed_at = $3
WHERE id = $1 AND status = 'processing'`

type PayoutRepository struct{}

func NewPayoutRepository() *PayoutRepository {
	return &PayoutRepository{}
}

func (r *PayoutRepository) Create(ctx context.Context, tx db.DBTX, p *payout.Payout) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertPayoutSQL,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.PartnerID()),
		pgconv.UUIDToPgtype(p.VerificationID()),
		p.Amount().Cents(),
		p.Currency(),
		p.Status().String(),
		pgconv.TimeToPgtype(p.ScheduledAt()),
		pgconv.TimeToPgtype(p.CreatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert payout", err)
	}
	return p.ID(), nil
}

func (r *PayoutRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*payout.Payout, error) {
	var (
		payoutID, partnerID, verificationID pgtype.UUID
		amountCents                         int64
		currency, status                    string
		failureReason, transferRef          pgtype.Text
		scheduledAt, createdAt              pgtype.Timestamptz
		processedAt                         pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findPayoutForUpdateSQL, pgconv.UUIDToPgtype(id)).Scan(
		&payoutID, &partnerID, &verificationID, &amountCents, &currency, &status,
		&failureReason, &transferRef, &scheduledAt, &processedAt, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payout", err)
	}

	money, err := payout.NewMoney(amountCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payout amount in storage", err, infra.KindDBFailure)
	}

	return payout.Reconstruct(
		uuid.UUID(payoutID.Bytes),
		uuid.UUID(partnerID.Bytes),
		uuid.UUID(verificationID.Bytes),
		money,
		currency,
		payout.Status(status),
		pgconv.StringPtrFromPgtype(failureReason),
		pgconv.StringPtrFromPgtype(transferRef),
		scheduledAt.Time,
		pgconv.TimePtrFromPgtype(processedAt),
		createdAt.Time,
	), nil
}

func (r *PayoutRepository) MarkProcessing(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markPayoutProcessingSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim payout for processing", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PayoutRepository) MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, transferRef string, processedAt time.Time) error {
	tag, err := tx.Exec(ctx, markPayoutPaidSQL, pgconv.UUIDToPgtype(id), transferRef, pgconv.TimeToPgtype(processedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to mark payout paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payout not in processing state", nil, infra.KindConflict)
	}
	return nil
}

func (r *PayoutRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, reason string, processedAt time.Time) error {
	tag, err := tx.Exec(ctx, markPayoutFailedSQL, pgconv.UUIDToPgtype(id), reason, pgconv.TimeToPgtype(processedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to mark payout failed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payout not in processing state", nil, infra.KindConflict)
	}
	return nil
}
