package shared

import (
	"context"
	"time"

	"washclub/internal/domain/code"
	"washclub/internal/domain/entitlement"
	"washclub/internal/domain/payout"
	"washclub/internal/domain/wash"
	"washclub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Codes() CodeRepository
	Subscriptions() SubscriptionRepository
	Purchases() PurchaseRepository
	Verifications() VerificationRepository
	Payouts() PayoutRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the snapshot lookups the write side needs for
// validation and amount calculation.
type CommandReads interface {
	SubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]entitlement.SubscriptionSpec, error)
	PurchasesByUser(ctx context.Context, userID uuid.UUID) ([]entitlement.PurchaseSpec, error)
	SubscriptionByID(ctx context.Context, id uuid.UUID) (*entitlement.SubscriptionSpec, error)
	PurchaseByID(ctx context.Context, id uuid.UUID) (*entitlement.PurchaseSpec, error)
	PlanPolicyBySubscription(ctx context.Context, subscriptionID uuid.UUID) (*payout.RatePolicy, error)
	ServicePolicyByPurchase(ctx context.Context, purchaseID uuid.UUID) (*payout.RatePolicy, error)
	PartnerAccountRef(ctx context.Context, partnerID uuid.UUID) (*string, error)
	RedemptionSettings(ctx context.Context) (*RedemptionSettings, error)
}

type CodeRepository interface {
	// Create inserts a new PENDING code; returns affected rows, zero
	// meaning the generated value collided with an existing code.
	Create(ctx context.Context, tx db.DBTX, vc *code.VerificationCode) (int64, error)
	// FindByValueForUpdate locks the row for the rest of the transaction.
	FindByValueForUpdate(ctx context.Context, tx db.DBTX, codeValue string) (*code.VerificationCode, error)
	// MarkExpired flips a PENDING code to EXPIRED; returns affected rows.
	MarkExpired(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	// ExpirePendingByEntitlement expires all PENDING codes bound to the
	// given subscription or purchase, except the one being issued.
	ExpirePendingBySubscription(ctx context.Context, tx db.DBTX, subscriptionID uuid.UUID) (int64, error)
	ExpirePendingByPurchase(ctx context.Context, tx db.DBTX, purchaseID uuid.UUID) (int64, error)
	// MarkInProgress transitions PENDING -> IN_PROGRESS only if the row
	// is still PENDING; returns affected rows.
	MarkInProgress(ctx context.Context, tx db.DBTX, id uuid.UUID, partnerID uuid.UUID, startedAt time.Time) (int64, error)
	// MarkCompleted transitions PENDING|IN_PROGRESS -> COMPLETED only if
	// the row still holds one of those statuses; returns affected rows.
	MarkCompleted(ctx context.Context, tx db.DBTX, id uuid.UUID, partnerID uuid.UUID, completedAt time.Time) (int64, error)
}

type SubscriptionRepository interface {
	// ConsumeQuota increments the wash-type counter only while the
	// subscription is still active, in date, and under quota; returns
	// affected rows.
	ConsumeQuota(ctx context.Context, tx db.DBTX, subscriptionID uuid.UUID, washType wash.Type, now time.Time) (int64, error)
}

type PurchaseRepository interface {
	// MarkUsed flips used false -> true only if still unused; returns
	// affected rows.
	MarkUsed(ctx context.Context, tx db.DBTX, purchaseID uuid.UUID, usedAt time.Time) (int64, error)
}

type VerificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec NewVerification) (uuid.UUID, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payout.Payout) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*payout.Payout, error)
	// MarkProcessing claims a PENDING or FAILED payout for a transfer
	// attempt; returns affected rows.
	MarkProcessing(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, transferRef string, processedAt time.Time) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, reason string, processedAt time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
