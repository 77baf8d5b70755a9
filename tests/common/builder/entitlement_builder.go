//go:build unit || e2e

package builder

import (
	"time"

	"washclub/internal/domain/entitlement"
	"washclub/internal/domain/wash"

	"github.com/google/uuid"
)

type SubscriptionSpecBuilder struct {
	spec entitlement.SubscriptionSpec
}

func NewSubscriptionSpecBuilder() *SubscriptionSpecBuilder {
	now := time.Now()
	inAndOut := int32(4)
	outsideOnly := int32(8)
	return &SubscriptionSpecBuilder{
		spec: entitlement.SubscriptionSpec{
			ID:               uuid.New(),
			PlanID:           uuid.New(),
			Status:           entitlement.SubscriptionStatusActive,
			StartDate:        now.AddDate(0, 0, -10),
			EndDate:          now.AddDate(0, 0, 20),
			InAndOutQuota:    &inAndOut,
			OutsideOnlyQuota: &outsideOnly,
		},
	}
}

func (b *SubscriptionSpecBuilder) WithStatus(status string) *SubscriptionSpecBuilder {
	b.spec.Status = status
	return b
}

func (b *SubscriptionSpecBuilder) WithEndDate(t time.Time) *SubscriptionSpecBuilder {
	b.spec.EndDate = t
	return b
}

func (b *SubscriptionSpecBuilder) WithQuota(t wash.Type, quota *int32) *SubscriptionSpecBuilder {
	switch t {
	case wash.TypeInAndOut:
		b.spec.InAndOutQuota = quota
	case wash.TypeOutsideOnly:
		b.spec.OutsideOnlyQuota = quota
	}
	return b
}

func (b *SubscriptionSpecBuilder) WithUsed(t wash.Type, used int32) *SubscriptionSpecBuilder {
	switch t {
	case wash.TypeInAndOut:
		b.spec.InAndOutUsed = used
	case wash.TypeOutsideOnly:
		b.spec.OutsideOnlyUsed = used
	}
	return b
}

func (b *SubscriptionSpecBuilder) Build() entitlement.SubscriptionSpec {
	return b.spec
}

type PurchaseSpecBuilder struct {
	spec entitlement.PurchaseSpec
}

func NewPurchaseSpecBuilder() *PurchaseSpecBuilder {
	return &PurchaseSpecBuilder{
		spec: entitlement.PurchaseSpec{
			ID:        uuid.New(),
			ServiceID: uuid.New(),
			WashType:  wash.TypeInAndOut,
			Status:    entitlement.PurchaseStatusCompleted,
			CreatedAt: time.Now(),
		},
	}
}

func (b *PurchaseSpecBuilder) WithWashType(t wash.Type) *PurchaseSpecBuilder {
	b.spec.WashType = t
	return b
}

func (b *PurchaseSpecBuilder) WithStatus(status string) *PurchaseSpecBuilder {
	b.spec.Status = status
	return b
}

func (b *PurchaseSpecBuilder) WithUsed(used bool) *PurchaseSpecBuilder {
	b.spec.Used = used
	return b
}

func (b *PurchaseSpecBuilder) WithCreatedAt(t time.Time) *PurchaseSpecBuilder {
	b.spec.CreatedAt = t
	return b
}

func (b *PurchaseSpecBuilder) Build() entitlement.PurchaseSpec {
	return b.spec
}
