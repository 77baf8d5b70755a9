package payout

import (
	"strings"

	"washclub/internal/domain/wash"
)

// RatePolicy is the payout-rate source for a redemption: a plan with
// two independent per-wash-type rates, or a service with only a name.
type RatePolicy struct {
	Name                   string
	InAndOutPayoutCents    *int64
	OutsideOnlyPayoutCents *int64
}

// Historical plans may lack explicit payout configuration, so amounts
// fall back to a name heuristic and finally a flat constant. Kept for
// backward compatibility.
const (
	premiumTierRateCents = 1200
	baseTierRateCents    = 700
	fallbackRateCents    = 500
)

type Calculator interface {
	AmountCents(policy RatePolicy, washType wash.Type) int64
}

type TieredCalculator struct{}

func NewTieredCalculator() *TieredCalculator {
	return &TieredCalculator{}
}

func (c *TieredCalculator) AmountCents(policy RatePolicy, washType wash.Type) int64 {
	if rate := explicitRate(policy, washType); rate != nil {
		return *rate
	}

	name := strings.ToLower(policy.Name)
	if name != "" {
		if strings.Contains(name, "premium") || strings.Contains(name, "deluxe") {
			return premiumTierRateCents
		}
		return baseTierRateCents
	}

	return fallbackRateCents
}

func explicitRate(policy RatePolicy, washType wash.Type) *int64 {
	switch washType {
	case wash.TypeInAndOut:
		return policy.InAndOutPayoutCents
	case wash.TypeOutsideOnly:
		return policy.OutsideOnlyPayoutCents
	default:
		return nil
	}
}
