package readstore

import (
	"context"

	"washclub/internal/domain/entitlement"
	"washclub/internal/domain/wash"
	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const subscriptionSpecColumns = `
SELECT s.id, s.plan_id, s.status, s.start_date, s.end_date,
       p.in_and_out_quota, p.outside_only_quota,
       s.in_and_out_washes_used, s.outside_only_washes_used
FROM subscriptions s
JOIN plans p ON p.id = s.plan_id`

const listSubscriptionsByUserSQL = subscriptionSpecColumns + `
WHERE s.user_id = $1`

const findSubscriptionByIDSQL = subscriptionSpecColumns + `
WHERE s.id = $1`

const purchaseSpecColumns = `
SELECT o.id, o.service_id, e.wash_type, o.status, o.used, o.created_at
FROM one_time_purchases o
JOIN extra_services e ON e.id = o.service_id`

const listPurchasesByUserSQL = purchaseSpecColumns + `
WHERE o.user_id = $1
ORDER BY o.created_at`

const findPurchaseByIDSQL = purchaseSpecColumns + `
WHERE o.id = $1`

// EntitlementReadStore supplies the subscription and purchase slices
// the entitlement resolver and the completion recheck work from.
type EntitlementReadStore struct {
	db db.DBTX
}

func NewEntitlementReadStore(db db.DBTX) *EntitlementReadStore {
	return &EntitlementReadStore{db: db}
}

func (s *EntitlementReadStore) SubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]entitlement.SubscriptionSpec, error) {
	rows, err := s.db.Query(ctx, listSubscriptionsByUserSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions", err)
	}
	defer rows.Close()

	specs := make([]entitlement.SubscriptionSpec, 0)
	for rows.Next() {
		spec, scanErr := scanSubscriptionSpec(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		specs = append(specs, *spec)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscription rows", rowsErr)
	}
	return specs, nil
}

func (s *EntitlementReadStore) SubscriptionByID(ctx context.Context, id uuid.UUID) (*entitlement.SubscriptionSpec, error) {
	rows, err := s.db.Query(ctx, findSubscriptionByIDSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return nil, infra.WrapRepoErr("failed to find subscription", rowsErr)
		}
		return nil, infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return scanSubscriptionSpec(rows)
}

func (s *EntitlementReadStore) PurchasesByUser(ctx context.Context, userID uuid.UUID) ([]entitlement.PurchaseSpec, error) {
	rows, err := s.db.Query(ctx, listPurchasesByUserSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}
	defer rows.Close()

	specs := make([]entitlement.PurchaseSpec, 0)
	for rows.Next() {
		spec, scanErr := scanPurchaseSpec(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		specs = append(specs, *spec)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, infra.WrapRepoErr("failed to iterate purchase rows", rowsErr)
	}
	return specs, nil
}

func (s *EntitlementReadStore) PurchaseByID(ctx context.Context, id uuid.UUID) (*entitlement.PurchaseSpec, error) {
	rows, err := s.db.Query(ctx, findPurchaseByIDSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find purchase", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return nil, infra.WrapRepoErr("failed to find purchase", rowsErr)
		}
		return nil, infra.WrapRepoErr("purchase not found", nil, infra.KindNotFound)
	}
	return scanPurchaseSpec(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscriptionSpec(row rowScanner) (*entitlement.SubscriptionSpec, error) {
	var (
		id, planID                    pgtype.UUID
		status                        string
		startDate, endDate            pgtype.Timestamptz
		inAndOutQuota, outsideQuota   pgtype.Int4
		inAndOutUsed, outsideOnlyUsed int32
	)
	err := row.Scan(&id, &planID, &status, &startDate, &endDate,
		&inAndOutQuota, &outsideQuota, &inAndOutUsed, &outsideOnlyUsed)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan subscription row", err)
	}
	return &entitlement.SubscriptionSpec{
		ID:               uuid.UUID(id.Bytes),
		PlanID:           uuid.UUID(planID.Bytes),
		Status:           status,
		StartDate:        startDate.Time,
		EndDate:          endDate.Time,
		InAndOutQuota:    pgconv.Int32PtrFromPgtype(inAndOutQuota),
		OutsideOnlyQuota: pgconv.Int32PtrFromPgtype(outsideQuota),
		InAndOutUsed:     inAndOutUsed,
		OutsideOnlyUsed:  outsideOnlyUsed,
	}, nil
}

func scanPurchaseSpec(row rowScanner) (*entitlement.PurchaseSpec, error) {
	var (
		id, serviceID    pgtype.UUID
		washType, status string
		used             bool
		createdAt        pgtype.Timestamptz
	)
	err := row.Scan(&id, &serviceID, &washType, &status, &used, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan purchase row", err)
	}
	return &entitlement.PurchaseSpec{
		ID:        uuid.UUID(id.Bytes),
		ServiceID: uuid.UUID(serviceID.Bytes),
		WashType:  wash.Type(washType),
		Status:    status,
		Used:      used,
		CreatedAt: createdAt.Time,
	}, nil
}
