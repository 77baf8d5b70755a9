//go:build unit

package code_test

import (
	"encoding/json"
	"testing"
	"time"

	"washclub/internal/domain/code"
	"washclub/internal/domain/wash"
	"washclub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationCode(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	subscriptionID := uuid.New()
	purchaseID := uuid.New()

	t.Run("bound to subscription", func(t *testing.T) {
		vc, err := code.NewVerificationCode("A1B2C3D4", userID, wash.TypeInAndOut, &subscriptionID, nil, now)
		require.NoError(t, err)
		require.NotNil(t, vc)

		assert.NotEqual(t, uuid.Nil, vc.ID())
		assert.Equal(t, code.StatusPending, vc.Status())
		assert.Equal(t, now.Add(code.DefaultTTL), vc.ExpiresAt())
		assert.Equal(t, subscriptionID, vc.EntitlementID())
		assert.Nil(t, vc.PurchaseID())
	})

	t.Run("bound to purchase", func(t *testing.T) {
		vc, err := code.NewVerificationCode("A1B2C3D4", userID, wash.TypeOutsideOnly, nil, &purchaseID, now)
		require.NoError(t, err)
		assert.Equal(t, purchaseID, vc.EntitlementID())
	})

	t.Run("both sources rejected", func(t *testing.T) {
		_, err := code.NewVerificationCode("A1B2C3D4", userID, wash.TypeInAndOut, &subscriptionID, &purchaseID, now)
		require.ErrorIs(t, err, code.ErrNoEntitlementLink)
	})

	t.Run("no source rejected", func(t *testing.T) {
		_, err := code.NewVerificationCode("A1B2C3D4", userID, wash.TypeInAndOut, nil, nil, now)
		require.ErrorIs(t, err, code.ErrNoEntitlementLink)
	})
}

func TestVerificationCodeStart(t *testing.T) {
	partnerID := uuid.New()
	now := time.Now()

	t.Run("pending code starts", func(t *testing.T) {
		vc := builder.NewCodeBuilder().BuildDomain()

		err := vc.Start(partnerID, now)
		require.NoError(t, err)
		assert.Equal(t, code.StatusInProgress, vc.Status())
		require.NotNil(t, vc.PartnerID())
		assert.Equal(t, partnerID, *vc.PartnerID())
		require.NotNil(t, vc.StartedAt())
	})

	t.Run("stale pending code flips to expired", func(t *testing.T) {
		vc := builder.NewCodeBuilder().WithExpiresAt(now.Add(-time.Minute)).BuildDomain()

		err := vc.Start(partnerID, now)
		require.ErrorIs(t, err, code.ErrExpired)
		assert.Equal(t, code.StatusExpired, vc.Status())
	})

	t.Run("in progress code cannot start again", func(t *testing.T) {
		vc := builder.NewCodeBuilder().WithStatus(code.StatusInProgress).BuildDomain()

		err := vc.Start(partnerID, now)
		require.ErrorIs(t, err, code.ErrAlreadyUsed)
	})

	t.Run("terminal code cannot start", func(t *testing.T) {
		for _, s := range []code.Status{code.StatusCompleted, code.StatusExpired, code.StatusCancelled} {
			vc := builder.NewCodeBuilder().WithStatus(s).BuildDomain()
			require.ErrorIs(t, vc.Start(partnerID, now), code.ErrAlreadyUsed)
		}
	})
}

func TestVerificationCodeComplete(t *testing.T) {
	partnerID := uuid.New()
	now := time.Now()

	t.Run("direct completion from pending", func(t *testing.T) {
		vc := builder.NewCodeBuilder().BuildDomain()

		err := vc.Complete(partnerID, now)
		require.NoError(t, err)
		assert.Equal(t, code.StatusCompleted, vc.Status())
		require.NotNil(t, vc.PartnerID())
		assert.Equal(t, partnerID, *vc.PartnerID())
		require.NotNil(t, vc.CompletedAt())
	})

	t.Run("completion after start by same partner", func(t *testing.T) {
		vc := builder.NewCodeBuilder().BuildDomain()
		require.NoError(t, vc.Start(partnerID, now))

		err := vc.Complete(partnerID, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, code.StatusCompleted, vc.Status())
	})

	t.Run("completion by a different partner is rejected", func(t *testing.T) {
		vc := builder.NewCodeBuilder().BuildDomain()
		require.NoError(t, vc.Start(partnerID, now))

		err := vc.Complete(uuid.New(), now.Add(time.Minute))
		require.ErrorIs(t, err, code.ErrOwnershipMismatch)
		assert.Equal(t, code.StatusInProgress, vc.Status())
	})

	t.Run("stale pending code flips to expired", func(t *testing.T) {
		vc := builder.NewCodeBuilder().WithExpiresAt(now.Add(-time.Minute)).BuildDomain()

		err := vc.Complete(partnerID, now)
		require.ErrorIs(t, err, code.ErrExpired)
		assert.Equal(t, code.StatusExpired, vc.Status())
	})

	t.Run("completed code cannot complete again", func(t *testing.T) {
		vc := builder.NewCodeBuilder().BuildDomain()
		require.NoError(t, vc.Complete(partnerID, now))

		err := vc.Complete(partnerID, now)
		require.ErrorIs(t, err, code.ErrAlreadyUsed)
	})

	t.Run("expired code cannot complete", func(t *testing.T) {
		vc := builder.NewCodeBuilder().WithStatus(code.StatusExpired).BuildDomain()

		err := vc.Complete(partnerID, now)
		require.ErrorIs(t, err, code.ErrAlreadyUsed)
	})
}

func TestVerificationCodeExpire(t *testing.T) {
	t.Run("pending code expires", func(t *testing.T) {
		vc := builder.NewCodeBuilder().BuildDomain()

		require.NoError(t, vc.Expire())
		assert.Equal(t, code.StatusExpired, vc.Status())
	})

	t.Run("non-pending code does not expire", func(t *testing.T) {
		vc := builder.NewCodeBuilder().WithStatus(code.StatusInProgress).BuildDomain()

		require.ErrorIs(t, vc.Expire(), code.ErrInvalidTransition)
	})
}

func TestQRPayload(t *testing.T) {
	b := builder.NewCodeBuilder()
	vc := b.BuildDomain()

	raw, err := vc.QRPayload()
	require.NoError(t, err)

	var payload code.QRPayload
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, b.Code, payload.Code)
	assert.Equal(t, *b.SubscriptionID, payload.EntitlementID)
	assert.Equal(t, b.UserID, payload.UserID)
	assert.Equal(t, wash.TypeInAndOut.String(), payload.WashType)
}
