//go:build unit || e2e

package builder

import (
	"time"

	"washclub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PayoutBuilder struct {
	PartnerID      uuid.UUID
	VerificationID uuid.UUID
	AmountCents    int64
	Currency       string
	Status         string
}

func NewPayoutBuilder() *PayoutBuilder {
	return &PayoutBuilder{
		PartnerID:      uuid.New(),
		VerificationID: uuid.New(),
		AmountCents:    700,
		Currency:       "EUR",
		Status:         "pending",
	}
}

func (b *PayoutBuilder) WithPartner(partnerID uuid.UUID) *PayoutBuilder {
	b.PartnerID = partnerID
	return b
}

func (b *PayoutBuilder) WithStatus(status string) *PayoutBuilder {
	b.Status = status
	return b
}

func (b *PayoutBuilder) WithAmount(cents int64) *PayoutBuilder {
	b.AmountCents = cents
	return b
}

func (b *PayoutBuilder) BuildView() *queries.PayoutView {
	now := time.Now()
	return &queries.PayoutView{
		ID:             uuid.New(),
		PartnerID:      b.PartnerID,
		VerificationID: b.VerificationID,
		AmountCents:    b.AmountCents,
		Currency:       b.Currency,
		Status:         b.Status,
		ScheduledAt:    now,
		CreatedAt:      now,
	}
}

func (b *PayoutBuilder) BuildListItem() *queries.PayoutListItem {
	return &queries.PayoutListItem{
		ID:          uuid.New(),
		AmountCents: b.AmountCents,
		Currency:    b.Currency,
		Status:      b.Status,
		CreatedAt:   time.Now(),
	}
}
