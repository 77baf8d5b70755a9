//go:build unit || e2e

package builder

import (
	"time"

	"washclub/internal/domain/code"
	"washclub/internal/domain/wash"
	"washclub/internal/usecase/queries"

	"github.com/google/uuid"
)

type CodeBuilder struct {
	ID             uuid.UUID
	Code           string
	UserID         uuid.UUID
	WashType       wash.Type
	Status         code.Status
	SubscriptionID *uuid.UUID
	PurchaseID     *uuid.UUID
	PartnerID      *uuid.UUID
	ExpiresAt      time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

func NewCodeBuilder() *CodeBuilder {
	now := time.Now()
	subscriptionID := uuid.New()
	return &CodeBuilder{
		ID:             uuid.New(),
		Code:           "A1B2C3D4",
		UserID:         uuid.New(),
		WashType:       wash.TypeInAndOut,
		Status:         code.StatusPending,
		SubscriptionID: &subscriptionID,
		ExpiresAt:      now.Add(code.DefaultTTL),
		CreatedAt:      now,
	}
}

func (b *CodeBuilder) With(mutate func(*CodeBuilder)) *CodeBuilder {
	mutate(b)
	return b
}

func (b *CodeBuilder) WithPurchaseSource() *CodeBuilder {
	purchaseID := uuid.New()
	b.SubscriptionID = nil
	b.PurchaseID = &purchaseID
	return b
}

func (b *CodeBuilder) WithStatus(s code.Status) *CodeBuilder {
	b.Status = s
	return b
}

func (b *CodeBuilder) WithPartner(partnerID uuid.UUID) *CodeBuilder {
	b.PartnerID = &partnerID
	return b
}

func (b *CodeBuilder) WithExpiresAt(t time.Time) *CodeBuilder {
	b.ExpiresAt = t
	return b
}

func (b *CodeBuilder) BuildDomain() *code.VerificationCode {
	return code.Reconstruct(
		b.ID,
		b.Code,
		b.UserID,
		b.WashType,
		b.Status,
		b.SubscriptionID,
		b.PurchaseID,
		b.PartnerID,
		b.ExpiresAt,
		b.StartedAt,
		b.CompletedAt,
		b.CreatedAt,
	)
}

func (b *CodeBuilder) BuildView() *queries.CodeView {
	return queries.CodeViewFromEntity(b.BuildDomain())
}

func (b *CodeBuilder) BuildListItem() *queries.CodeListItem {
	return &queries.CodeListItem{
		ID:        b.ID,
		Code:      b.Code,
		WashType:  b.WashType.String(),
		Status:    b.Status.String(),
		ExpiresAt: b.ExpiresAt,
		CreatedAt: b.CreatedAt,
	}
}
