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

const findCodeViewSQL = `
SELECT id, code, user_id, wash_type, status, subscription_id, purchase_id,
       partner_id, expires_at, started_at, completed_at, created_at
FROM verification_codes
WHERE code = $1`

const listCodesByUserSQL = `
SELECT id, code, wash_type, status, expires_at, created_at
FROM verification_codes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

type CodeReadStore struct {
	db db.DBTX
}

func NewCodeReadStore(db db.DBTX) *CodeReadStore {
	return &CodeReadStore{db: db}
}

func (s *CodeReadStore) FindByValue(ctx context.Context, codeValue string) (*queries.CodeView, error) {
	var (
		id, userID, subID, purID, partnerID pgtype.UUID
		value, washType, status             string
		expiresAt, createdAt                pgtype.Timestamptz
		startedAt, completedAt              pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findCodeViewSQL, codeValue).Scan(
		&id, &value, &userID, &washType, &status,
		&subID, &purID, &partnerID,
		&expiresAt, &startedAt, &completedAt, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find verification code view", err)
	}

	return &queries.CodeView{
		ID:             uuid.UUID(id.Bytes),
		Code:           value,
		UserID:         uuid.UUID(userID.Bytes),
		WashType:       washType,
		Status:         status,
		SubscriptionID: pgconv.UUIDPtrFromPgtype(subID),
		PurchaseID:     pgconv.UUIDPtrFromPgtype(purID),
		PartnerID:      pgconv.UUIDPtrFromPgtype(partnerID),
		ExpiresAt:      expiresAt.Time,
		StartedAt:      pgconv.TimePtrFromPgtype(startedAt),
		CompletedAt:    pgconv.TimePtrFromPgtype(completedAt),
		CreatedAt:      createdAt.Time,
	}, nil
}

func (s *CodeReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.CodeListItem, error) {
	rows, err := s.db.Query(ctx, listCodesByUserSQL, pgconv.UUIDToPgtype(userID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list verification codes", err)
	}
	defer rows.Close()

	items := make([]*queries.CodeListItem, 0)
	for rows.Next() {
		var (
			id                   pgtype.UUID
			value, washType      string
			status               string
			expiresAt, createdAt pgtype.Timestamptz
		)
		if scanErr := rows.Scan(&id, &value, &washType, &status, &expiresAt, &createdAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan verification code row", scanErr)
		}
		items = append(items, &queries.CodeListItem{
			ID:        uuid.UUID(id.Bytes),
			Code:      value,
			WashType:  washType,
			Status:    status,
			ExpiresAt: expiresAt.Time,
			CreatedAt: createdAt.Time,
		})
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate verification code rows", rowsErr)
	}
	return items, nil
}
