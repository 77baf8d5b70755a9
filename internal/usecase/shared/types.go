package shared

import (
	"washclub/internal/domain/wash"

	"github.com/google/uuid"
)

// RedemptionSettings is the typed platform configuration read once per
// completion flow.
type RedemptionSettings struct {
	AutoPayoutEnabled bool
}

// NewVerification captures the audit facts of one completed redemption.
type NewVerification struct {
	CodeID      uuid.UUID
	UserID      uuid.UUID
	PartnerID   uuid.UUID
	WashType    wash.Type
	AmountCents int64
}
