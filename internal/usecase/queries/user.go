package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetAuthorizedUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetAuthorizedUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	return q.store.FindByID(ctx, userID)
}
