package readstore

import (
	"context"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const partnerAccountRefSQL = `
SELECT partner_account_ref
FROM users
WHERE id = $1 AND role = 'partner'`

type PartnerReadStore struct {
	db db.DBTX
}

func NewPartnerReadStore(db db.DBTX) *PartnerReadStore {
	return &PartnerReadStore{db: db}
}

// AccountRef returns the partner's transfer destination, or nil when
// none is configured.
func (s *PartnerReadStore) AccountRef(ctx context.Context, partnerID uuid.UUID) (*string, error) {
	var ref pgtype.Text
	err := s.db.QueryRow(ctx, partnerAccountRefSQL, pgconv.UUIDToPgtype(partnerID)).Scan(&ref)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read partner account ref", err)
	}
	return pgconv.StringPtrFromPgtype(ref), nil
}
