package queries

import (
	"context"

	"washclub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCodeViewNotFound = errs.New("verification code not found")

type CodeQueries interface {
	// GetByValue returns the code only to its owning customer.
	GetByValue(ctx context.Context, actor uuid.UUID, codeValue string) (*CodeView, error)
	// GetByValueSystem bypasses ownership for read-after-write.
	GetByValueSystem(ctx context.Context, codeValue string) (*CodeView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*CodeListItem, error)
}

type CodeReadStore interface {
	FindByValue(ctx context.Context, codeValue string) (*CodeView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*CodeListItem, error)
}

type codeQueriesImpl struct {
	store CodeReadStore
}

func NewCodeQueries(store CodeReadStore) CodeQueries {
	return &codeQueriesImpl{store: store}
}

func (q *codeQueriesImpl) GetByValue(ctx context.Context, actor uuid.UUID, codeValue string) (*CodeView, error) {
	view, err := q.store.FindByValue(ctx, codeValue)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		// Hide existence from non-owners.
		return nil, ErrCodeViewNotFound
	}
	return view, nil
}

func (q *codeQueriesImpl) GetByValueSystem(ctx context.Context, codeValue string) (*CodeView, error) {
	return q.store.FindByValue(ctx, codeValue)
}

func (q *codeQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*CodeListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindByUserID(ctx, userID, int32(limit))
}
