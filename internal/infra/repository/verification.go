package repository

import (
	"context"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"
	"washclub/internal/usecase/shared"

	"github.com/google/uuid"
)

const insertVerificationSQL = `
INSERT INTO verifications (id, code_id, user_id, partner_id, wash_type, amount_cents)
VALUES ($1, $2, $3, $4, $5, $6)`

type VerificationRepository struct{}

func NewVerificationRepository() *VerificationRepository {
	return &VerificationRepository{}
}

func (r *VerificationRepository) Create(ctx context.Context, tx db.DBTX, rec shared.NewVerification) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, insertVerificationSQL,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDToPgtype(rec.CodeID),
		pgconv.UUIDToPgtype(rec.UserID),
		pgconv.UUIDToPgtype(rec.PartnerID),
		rec.WashType.String(),
		rec.AmountCents,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert verification", err)
	}
	return id, nil
}
