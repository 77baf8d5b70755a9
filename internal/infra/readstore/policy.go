package readstore

import (
	"context"

	"washclub/internal/domain/payout"
	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const planPolicyBySubscriptionSQL = `
SELECT p.name, p.in_and_out_payout_cents, p.outside_only_payout_cents
FROM subscriptions s
JOIN plans p ON p.id = s.plan_id
WHERE s.id = $1`

const servicePolicyByPurchaseSQL = `
SELECT e.name
FROM one_time_purchases o
JOIN extra_services e ON e.id = o.service_id
WHERE o.id = $1`

// PolicyReadStore resolves the payout-rate source for a redemption:
// the subscription's plan, or the purchased service (name only, so
// the amount falls through the heuristic tiers).
type PolicyReadStore struct {
	db db.DBTX
}

func NewPolicyReadStore(db db.DBTX) *PolicyReadStore {
	return &PolicyReadStore{db: db}
}

func (s *PolicyReadStore) PlanPolicyBySubscription(ctx context.Context, subscriptionID uuid.UUID) (*payout.RatePolicy, error) {
	var (
		name             string
		inAndOutCents    pgtype.Int8
		outsideOnlyCents pgtype.Int8
	)
	err := s.db.QueryRow(ctx, planPolicyBySubscriptionSQL, pgconv.UUIDToPgtype(subscriptionID)).
		Scan(&name, &inAndOutCents, &outsideOnlyCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find plan rate policy", err)
	}
	return &payout.RatePolicy{
		Name:                   name,
		InAndOutPayoutCents:    pgconv.Int64PtrFromPgtype(inAndOutCents),
		OutsideOnlyPayoutCents: pgconv.Int64PtrFromPgtype(outsideOnlyCents),
	}, nil
}

func (s *PolicyReadStore) ServicePolicyByPurchase(ctx context.Context, purchaseID uuid.UUID) (*payout.RatePolicy, error) {
	var name string
	err := s.db.QueryRow(ctx, servicePolicyByPurchaseSQL, pgconv.UUIDToPgtype(purchaseID)).Scan(&name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service rate policy", err)
	}
	return &payout.RatePolicy{Name: name}, nil
}
