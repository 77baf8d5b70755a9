//go:build unit

package payout_test

import (
	"testing"
	"time"

	"washclub/internal/domain/payout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := payout.NewMoney(-1)
		require.ErrorIs(t, err, payout.ErrNegativeAmount)
	})

	t.Run("cents preserved", func(t *testing.T) {
		m, err := payout.NewMoney(700)
		require.NoError(t, err)
		assert.Equal(t, int64(700), m.Cents())
	})
}

func TestPayoutLifecycle(t *testing.T) {
	partnerID := uuid.New()
	verificationID := uuid.New()
	now := time.Now()

	newPayout := func() *payout.Payout {
		amount, err := payout.NewMoney(700)
		require.NoError(t, err)
		return payout.NewPayout(partnerID, verificationID, amount, now)
	}

	t.Run("new payout is pending", func(t *testing.T) {
		p := newPayout()
		assert.Equal(t, payout.StatusPending, p.Status())
		assert.Equal(t, payout.DefaultCurrency, p.Currency())
		assert.Equal(t, int64(700), p.Amount().Cents())
	})

	t.Run("pending to processing to paid", func(t *testing.T) {
		p := newPayout()
		require.NoError(t, p.BeginProcessing())
		assert.Equal(t, payout.StatusProcessing, p.Status())

		require.NoError(t, p.MarkPaid("tr_123", now))
		assert.Equal(t, payout.StatusPaid, p.Status())
		require.NotNil(t, p.TransferRef())
		assert.Equal(t, "tr_123", *p.TransferRef())
		require.NotNil(t, p.ProcessedAt())
	})

	t.Run("processing to failed keeps the reason", func(t *testing.T) {
		p := newPayout()
		require.NoError(t, p.BeginProcessing())
		require.NoError(t, p.MarkFailed("gateway timeout", now))

		assert.Equal(t, payout.StatusFailed, p.Status())
		require.NotNil(t, p.FailureReason())
		assert.Equal(t, "gateway timeout", *p.FailureReason())
	})

	t.Run("failed payout can be reprocessed", func(t *testing.T) {
		p := newPayout()
		require.NoError(t, p.BeginProcessing())
		require.NoError(t, p.MarkFailed("gateway timeout", now))

		require.NoError(t, p.BeginProcessing())
		assert.Equal(t, payout.StatusProcessing, p.Status())
	})

	t.Run("paid payout is terminal", func(t *testing.T) {
		p := newPayout()
		require.NoError(t, p.BeginProcessing())
		require.NoError(t, p.MarkPaid("tr_123", now))

		require.ErrorIs(t, p.BeginProcessing(), payout.ErrNotRetryable)
		require.ErrorIs(t, p.MarkPaid("tr_456", now), payout.ErrInvalidStatusChange)
		require.ErrorIs(t, p.MarkFailed("late failure", now), payout.ErrInvalidStatusChange)
	})

	t.Run("pending payout cannot be marked paid directly", func(t *testing.T) {
		p := newPayout()
		require.ErrorIs(t, p.MarkPaid("tr_123", now), payout.ErrInvalidStatusChange)
	})
}
