//go:build unit

package payout_test

import (
	"testing"

	"washclub/internal/domain/payout"
	"washclub/internal/domain/wash"

	"github.com/stretchr/testify/assert"
)

func TestTieredCalculator(t *testing.T) {
	calc := payout.NewTieredCalculator()
	explicit := int64(1550)

	cases := []struct {
		name     string
		policy   payout.RatePolicy
		washType wash.Type
		expected int64
	}{
		{
			name:     "explicit rate wins over name",
			policy:   payout.RatePolicy{Name: "Premium Unlimited", InAndOutPayoutCents: &explicit},
			washType: wash.TypeInAndOut,
			expected: 1550,
		},
		{
			name:     "explicit rate for other wash type does not apply",
			policy:   payout.RatePolicy{Name: "Basic", InAndOutPayoutCents: &explicit},
			washType: wash.TypeOutsideOnly,
			expected: 700,
		},
		{
			name:     "premium name",
			policy:   payout.RatePolicy{Name: "Premium Unlimited"},
			washType: wash.TypeInAndOut,
			expected: 1200,
		},
		{
			name:     "deluxe name case insensitive",
			policy:   payout.RatePolicy{Name: "DELUXE Wash"},
			washType: wash.TypeOutsideOnly,
			expected: 1200,
		},
		{
			name:     "plain name gets base rate",
			policy:   payout.RatePolicy{Name: "Standard"},
			washType: wash.TypeInAndOut,
			expected: 700,
		},
		{
			name:     "empty name falls back to flat rate",
			policy:   payout.RatePolicy{},
			washType: wash.TypeOutsideOnly,
			expected: 500,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, calc.AmountCents(c.policy, c.washType))
		})
	}
}
