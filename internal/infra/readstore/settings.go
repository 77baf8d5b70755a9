package readstore

import (
	"context"
	"errors"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const redemptionSettingsSQL = `
SELECT auto_payout_enabled
FROM redemption_settings
WHERE id = 1`

// SettingsReadStore reads the typed platform configuration. A missing
// settings row falls back to defaults.
type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(db db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (s *SettingsReadStore) RedemptionSettings(ctx context.Context) (*shared.RedemptionSettings, error) {
	var autoPayoutEnabled bool
	err := s.db.QueryRow(ctx, redemptionSettingsSQL).Scan(&autoPayoutEnabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &shared.RedemptionSettings{AutoPayoutEnabled: false}, nil
		}
		return nil, infra.WrapRepoErr("failed to read redemption settings", err)
	}
	return &shared.RedemptionSettings{AutoPayoutEnabled: autoPayoutEnabled}, nil
}
