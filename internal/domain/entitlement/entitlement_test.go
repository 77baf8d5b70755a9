//go:build unit

package entitlement_test

import (
	"testing"
	"time"

	"washclub/internal/domain/entitlement"
	"washclub/internal/domain/wash"
	"washclub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	now := time.Now()

	t.Run("active subscription with quota wins", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().Build()
		purchase := builder.NewPurchaseSpecBuilder().Build()

		ent, err := entitlement.Resolve(now, wash.TypeInAndOut,
			[]entitlement.SubscriptionSpec{sub},
			[]entitlement.PurchaseSpec{purchase})
		require.NoError(t, err)
		assert.Equal(t, entitlement.SourceSubscription, ent.Kind)
		require.NotNil(t, ent.SubscriptionID)
		assert.Equal(t, sub.ID, *ent.SubscriptionID)
		assert.Nil(t, ent.PurchaseID)
	})

	t.Run("several active subscriptions tie-break on latest end date", func(t *testing.T) {
		earlier := builder.NewSubscriptionSpecBuilder().WithEndDate(now.AddDate(0, 0, 5)).Build()
		later := builder.NewSubscriptionSpecBuilder().WithEndDate(now.AddDate(0, 0, 25)).Build()

		ent, err := entitlement.Resolve(now, wash.TypeInAndOut,
			[]entitlement.SubscriptionSpec{earlier, later}, nil)
		require.NoError(t, err)
		assert.Equal(t, later.ID, *ent.SubscriptionID)
	})

	t.Run("exhausted subscription falls back to purchase", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().WithUsed(wash.TypeInAndOut, 4).Build()
		purchase := builder.NewPurchaseSpecBuilder().Build()

		ent, err := entitlement.Resolve(now, wash.TypeInAndOut,
			[]entitlement.SubscriptionSpec{sub},
			[]entitlement.PurchaseSpec{purchase})
		require.NoError(t, err)
		assert.Equal(t, entitlement.SourcePurchase, ent.Kind)
		require.NotNil(t, ent.PurchaseID)
		assert.Equal(t, purchase.ID, *ent.PurchaseID)
	})

	t.Run("oldest matching purchase is picked", func(t *testing.T) {
		newer := builder.NewPurchaseSpecBuilder().WithCreatedAt(now.Add(-time.Hour)).Build()
		older := builder.NewPurchaseSpecBuilder().WithCreatedAt(now.Add(-48 * time.Hour)).Build()

		ent, err := entitlement.Resolve(now, wash.TypeInAndOut, nil,
			[]entitlement.PurchaseSpec{newer, older})
		require.NoError(t, err)
		assert.Equal(t, older.ID, *ent.PurchaseID)
	})

	t.Run("purchase of other wash type does not match", func(t *testing.T) {
		purchase := builder.NewPurchaseSpecBuilder().WithWashType(wash.TypeOutsideOnly).Build()

		_, err := entitlement.Resolve(now, wash.TypeInAndOut, nil,
			[]entitlement.PurchaseSpec{purchase})
		require.ErrorIs(t, err, entitlement.ErrNoEntitlement)
	})

	t.Run("expired subscription gives exhausted, not missing", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().WithEndDate(now.AddDate(0, 0, -1)).Build()

		_, err := entitlement.Resolve(now, wash.TypeInAndOut,
			[]entitlement.SubscriptionSpec{sub}, nil)
		require.ErrorIs(t, err, entitlement.ErrExhausted)
	})

	t.Run("used purchase gives exhausted", func(t *testing.T) {
		purchase := builder.NewPurchaseSpecBuilder().WithUsed(true).Build()

		_, err := entitlement.Resolve(now, wash.TypeInAndOut, nil,
			[]entitlement.PurchaseSpec{purchase})
		require.ErrorIs(t, err, entitlement.ErrExhausted)
	})

	t.Run("no sources at all gives missing", func(t *testing.T) {
		_, err := entitlement.Resolve(now, wash.TypeInAndOut, nil, nil)
		require.ErrorIs(t, err, entitlement.ErrNoEntitlement)
	})

	t.Run("plan without quota for wash type gives missing", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().WithQuota(wash.TypeInAndOut, nil).Build()

		_, err := entitlement.Resolve(now, wash.TypeInAndOut,
			[]entitlement.SubscriptionSpec{sub}, nil)
		require.ErrorIs(t, err, entitlement.ErrNoEntitlement)
	})
}

func TestSubscriptionSpec(t *testing.T) {
	now := time.Now()

	t.Run("remaining never negative", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().WithUsed(wash.TypeInAndOut, 10).Build()
		assert.Equal(t, int32(0), sub.Remaining(wash.TypeInAndOut))
	})

	t.Run("cancelled subscription is inactive", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().WithStatus("cancelled").Build()
		assert.False(t, sub.IsActiveAt(now))
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		sub := builder.NewSubscriptionSpecBuilder().WithEndDate(now).Build()
		assert.True(t, sub.IsActiveAt(now))
	})
}
