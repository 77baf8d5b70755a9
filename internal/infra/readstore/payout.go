package readstore

import (
	"context"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"
	"washclub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findPayoutViewSQL = `
SELECT id, partner_id, verification_id, amount_cents, currency, status,
       failure_reason, transfer_ref, scheduled_at, processed_at, created_at
FROM payouts
WHERE id = $1`

const listPayoutsByPartnerSQL = `
SELECT id, amount_cents, currency, status, created_at
FROM payouts
WHERE partner_id = $1
ORDER BY created_at DESC
LIMIT $2`

type PayoutReadStore struct {
	db db.DBTX
}

func NewPayoutReadStore(db db.DBTX) *PayoutReadStore {
	return &PayoutReadStore{db: db}
}

func (s *PayoutReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PayoutView, error) {
	var (
		payoutID, partnerID, verificationID pgtype.UUID
		amountCents                         int64
		currency, status                    string
		failureReason, transferRef          pgtype.Text
		scheduledAt, createdAt              pgtype.Timestamptz
		processedAt                         pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findPayoutViewSQL, pgconv.UUIDToPgtype(id)).Scan(
		&payoutID, &partnerID, &verificationID, &amountCents, &currency, &status,
		&failureReason, &transferRef, &scheduledAt, &processedAt, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payout view", err)
	}

	return &queries.PayoutView{
		ID:             uuid.UUID(payoutID.Bytes),
		PartnerID:      uuid.UUID(partnerID.Bytes),
		VerificationID: uuid.UUID(verificationID.Bytes),
		AmountCents:    amountCents,
		Currency:       currency,
		Status:         status,
		FailureReason:  pgconv.StringPtrFromPgtype(failureReason),
		TransferRef:    pgconv.StringPtrFromPgtype(transferRef),
		ScheduledAt:    scheduledAt.Time,
		ProcessedAt:    pgconv.TimePtrFromPgtype(processedAt),
		CreatedAt:      createdAt.Time,
	}, nil
}

func (s *PayoutReadStore) FindByPartnerID(ctx context.Context, partnerID uuid.UUID, limit int32) ([]*queries.PayoutListItem, error) {
	rows, err := s.db.Query(ctx, listPayoutsByPartnerSQL, pgconv.UUIDToPgtype(partnerID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts", err)
	}
	defer rows.Close()

	items := make([]*queries.PayoutListItem, 0)
	for rows.Next() {
		var (
			id          pgtype.UUID
			amountCents int64
			currency    string
			status      string
			createdAt   pgtype.Timestamptz
		)
		if scanErr := rows.Scan(&id, &amountCents, &currency, &status, &createdAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan payout row", scanErr)
		}
		items = append(items, &queries.PayoutListItem{
			ID:          uuid.UUID(id.Bytes),
			AmountCents: amountCents,
			Currency:    currency,
			Status:      status,
			CreatedAt:   createdAt.Time,
		})
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate payout rows", rowsErr)
	}
	return items, nil
}
