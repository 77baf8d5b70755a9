//go:build unit

package repository_test

import (
	"testing"

	"washclub/internal/infra/repository"
	"washclub/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

// Each assignment is checked at compile time, so a drifting method
// signature fails this package before any integration run.
func TestRepositoriesImplementWritePorts(t *testing.T) {
	var codes shared.CodeRepository = repository.NewCodeRepository()
	assert.NotNil(t, codes)

	var subscriptions shared.SubscriptionRepository = repository.NewSubscriptionRepository()
	assert.NotNil(t, subscriptions)

	var purchases shared.PurchaseRepository = repository.NewPurchaseRepository()
	assert.NotNil(t, purchases)

	var verifications shared.VerificationRepository = repository.NewVerificationRepository()
	assert.NotNil(t, verifications)

	var payouts shared.PayoutRepository = repository.NewPayoutRepository()
	assert.NotNil(t, payouts)

	var notifications shared.NotificationRepository = repository.NewNotificationRepository()
	assert.NotNil(t, notifications)

	var users shared.UserRepository = repository.NewUserRepository()
	assert.NotNil(t, users)
}
