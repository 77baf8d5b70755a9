package commands

import (
	"context"

	"github.com/google/uuid"
)

// QREncoder renders the code payload into a displayable image.
// Presentational only; the code value alone is authoritative.
type QREncoder interface {
	EncodePNG(payload []byte) ([]byte, error)
}

// TransferGateway is the external payout-transfer capability.
type TransferGateway interface {
	Transfer(ctx context.Context, accountRef string, amountCents int64, currency string) (string, error)
}

// Notifier pushes a message to a user or partner. Fire-and-forget:
// implementations observe failures and never propagate them.
type Notifier interface {
	Push(ctx context.Context, recipientID uuid.UUID, topic, message string)
}

// RedemptionMetrics records operational counters for the redemption
// and payout flows.
type RedemptionMetrics interface {
	CodeIssued(washType string)
	RedemptionFinished(outcome string)
	PayoutRecorded(status string, amountCents int64)
}

// PayoutProcessor runs one transfer attempt for a payout. The
// completion flow calls it post-commit and ignores its error.
type PayoutProcessor interface {
	Process(ctx context.Context, payoutID uuid.UUID) error
}
