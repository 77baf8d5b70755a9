package entitlement

import (
	"errors"
	"time"

	"washclub/internal/domain/wash"

	"github.com/google/uuid"
)

var (
	// ErrNoEntitlement means the user never had quota or a purchase
	// for the requested wash type.
	ErrNoEntitlement = errors.New("no entitlement for wash type")
	// ErrExhausted means the user had quota or purchases but they are
	// all consumed.
	ErrExhausted = errors.New("entitlement exhausted")
)

type SourceKind string

const (
	SourceSubscription SourceKind = "subscription"
	SourcePurchase     SourceKind = "one_time_purchase"
)

const (
	SubscriptionStatusActive = "active"
	PurchaseStatusCompleted  = "completed"
)

// SubscriptionSpec is the slice of a subscription row relevant to
// entitlement decisions. Quota fields are nullable in storage; nil is
// treated as zero.
type SubscriptionSpec struct {
	ID               uuid.UUID
	PlanID           uuid.UUID
	Status           string
	StartDate        time.Time
	EndDate          time.Time
	InAndOutQuota    *int32
	OutsideOnlyQuota *int32
	InAndOutUsed     int32
	OutsideOnlyUsed  int32
}

func (s SubscriptionSpec) IsActiveAt(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && !now.After(s.EndDate)
}

func (s SubscriptionSpec) Quota(t wash.Type) int32 {
	var q *int32
	switch t {
	case wash.TypeInAndOut:
		q = s.InAndOutQuota
	case wash.TypeOutsideOnly:
		q = s.OutsideOnlyQuota
	}
	if q == nil {
		return 0
	}
	return *q
}

func (s SubscriptionSpec) Used(t wash.Type) int32 {
	switch t {
	case wash.TypeInAndOut:
		return s.InAndOutUsed
	case wash.TypeOutsideOnly:
		return s.OutsideOnlyUsed
	default:
		return 0
	}
}

func (s SubscriptionSpec) Remaining(t wash.Type) int32 {
	remaining := s.Quota(t) - s.Used(t)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s SubscriptionSpec) CanRedeem(t wash.Type, now time.Time) bool {
	return s.IsActiveAt(now) && s.Remaining(t) > 0
}

// PurchaseSpec is the slice of a one-time purchase row relevant to
// entitlement decisions.
type PurchaseSpec struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	WashType  wash.Type
	Status    string
	Used      bool
	CreatedAt time.Time
}

func (p PurchaseSpec) Redeemable() bool {
	return p.Status == PurchaseStatusCompleted && !p.Used
}

func (p PurchaseSpec) CanRedeem(t wash.Type) bool {
	return p.Redeemable() && p.WashType == t
}

// Entitlement is the resolved right to redeem one wash.
type Entitlement struct {
	Kind           SourceKind
	SubscriptionID *uuid.UUID
	PurchaseID     *uuid.UUID
}

// Resolve picks the entitlement source for one wash of the requested
// type: an active in-date subscription with remaining quota first
// (several active subscriptions tie-break on latest end date), else
// the oldest completed unused purchase of the matching wash type.
// The error distinguishes "never had quota" from "had but exhausted".
func Resolve(now time.Time, t wash.Type, subs []SubscriptionSpec, purchases []PurchaseSpec) (*Entitlement, error) {
	if sub := pickSubscription(now, subs); sub != nil {
		if sub.CanRedeem(t, now) {
			id := sub.ID
			return &Entitlement{Kind: SourceSubscription, SubscriptionID: &id}, nil
		}
	}

	if p := pickPurchase(t, purchases); p != nil {
		id := p.ID
		return &Entitlement{Kind: SourcePurchase, PurchaseID: &id}, nil
	}

	if hadEntitlement(t, subs, purchases) {
		return nil, ErrExhausted
	}
	return nil, ErrNoEntitlement
}

func pickSubscription(now time.Time, subs []SubscriptionSpec) *SubscriptionSpec {
	var best *SubscriptionSpec
	for i := range subs {
		s := &subs[i]
		if !s.IsActiveAt(now) {
			continue
		}
		if best == nil || s.EndDate.After(best.EndDate) {
			best = s
		}
	}
	return best
}

func pickPurchase(t wash.Type, purchases []PurchaseSpec) *PurchaseSpec {
	var oldest *PurchaseSpec
	for i := range purchases {
		p := &purchases[i]
		if !p.CanRedeem(t) {
			continue
		}
		if oldest == nil || p.CreatedAt.Before(oldest.CreatedAt) {
			oldest = p
		}
	}
	return oldest
}

func hadEntitlement(t wash.Type, subs []SubscriptionSpec, purchases []PurchaseSpec) bool {
	for _, s := range subs {
		if s.Quota(t) > 0 {
			return true
		}
	}
	for _, p := range purchases {
		if p.WashType == t {
			return true
		}
	}
	return false
}
