package queries

import (
	"context"

	"washclub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPayoutViewNotFound = errs.New("payout not found")

type PayoutQueries interface {
	// GetByID returns the payout to its partner; admins pass
	// isAdmin=true to bypass ownership.
	GetByID(ctx context.Context, actor uuid.UUID, isAdmin bool, id uuid.UUID) (*PayoutView, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID, limit int) ([]*PayoutListItem, error)
}

type PayoutReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PayoutView, error)
	FindByPartnerID(ctx context.Context, partnerID uuid.UUID, limit int32) ([]*PayoutListItem, error)
}

type payoutQueriesImpl struct {
	store PayoutReadStore
}

func NewPayoutQueries(store PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{store: store}
}

func (q *payoutQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, isAdmin bool, id uuid.UUID) (*PayoutView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && view.PartnerID != actor {
		return nil, ErrPayoutViewNotFound
	}
	return view, nil
}

func (q *payoutQueriesImpl) ListByPartner(ctx context.Context, partnerID uuid.UUID, limit int) ([]*PayoutListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindByPartnerID(ctx, partnerID, int32(limit))
}
