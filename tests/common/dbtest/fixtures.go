//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestPartner creates a partner user with an external payout
// account reference attached.
func CreateTestPartner(t *testing.T, db DBLike, email, accountRef string) uuid.UUID {
	t.Helper()

	partnerID := CreateTestUser(t, db, email, "partner")

	_, err := db.Exec(context.Background(),
		"UPDATE users SET partner_account_ref = $1 WHERE id = $2", accountRef, partnerID)
	require.NoError(t, err)

	return partnerID
}

func CreateTestPlan(t *testing.T, db DBLike, name string, inAndOutQuota, outsideOnlyQuota *int32) uuid.UUID {
	t.Helper()

	planID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO plans (id, name, price_cents, in_and_out_quota, outside_only_quota) VALUES ($1, $2, $3, $4, $5)",
		planID, name, int64(2999), inAndOutQuota, outsideOnlyQuota)
	require.NoError(t, err)

	return planID
}

func CreateTestSubscription(t *testing.T, db DBLike, userID, planID uuid.UUID, status string, start, end time.Time) uuid.UUID {
	t.Helper()

	subscriptionID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO subscriptions (id, user_id, plan_id, status, start_date, end_date) VALUES ($1, $2, $3, $4, $5, $6)",
		subscriptionID, userID, planID, status, start, end)
	require.NoError(t, err)

	return subscriptionID
}

func CreateTestService(t *testing.T, db DBLike, name, washType string) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO extra_services (id, name, wash_type, price_cents) VALUES ($1, $2, $3, $4)",
		serviceID, name, washType, int64(1499))
	require.NoError(t, err)

	return serviceID
}

func CreateTestPurchase(t *testing.T, db DBLike, userID, serviceID uuid.UUID, status string, used bool) uuid.UUID {
	t.Helper()

	purchaseID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO one_time_purchases (id, user_id, service_id, status, used) VALUES ($1, $2, $3, $4, $5)",
		purchaseID, userID, serviceID, status, used)
	require.NoError(t, err)

	return purchaseID
}

func MarkPurchaseUsed(t *testing.T, db DBLike, purchaseID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE one_time_purchases SET used = true WHERE id = $1", purchaseID)
	require.NoError(t, err)
}

func SetAutoPayout(t *testing.T, db DBLike, enabled bool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE redemption_settings SET auto_payout_enabled = $1 WHERE id = 1", enabled)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO redemption_settings (id, auto_payout_enabled)
		VALUES (1, FALSE)
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
