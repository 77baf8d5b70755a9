package transfer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// NoopGateway acknowledges every transfer without calling anything.
// Used in development and tests, and whenever no transfer service is
// configured.
type NoopGateway struct{}

func NewNoopGateway() *NoopGateway {
	return &NoopGateway{}
}

func (g *NoopGateway) Transfer(_ context.Context, accountRef string, amountCents int64, currency string) (string, error) {
	transferID := "noop-" + uuid.NewString()
	slog.Info("noop transfer",
		"account_ref", accountRef,
		"amount_cents", amountCents,
		"currency", currency,
		"transfer_id", transferID)
	return transferID, nil
}
