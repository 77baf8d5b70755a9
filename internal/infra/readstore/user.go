package readstore

import (
	"context"

	"washclub/internal/infra"
	"washclub/internal/infra/db"
	"washclub/internal/pkg/pgconv"
	"washclub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByIDSQL = `
SELECT id, email, role, partner_account_ref, is_active
FROM users
WHERE id = $1`

const findUserByEmailSQL = `
SELECT id, email, role, partner_account_ref, is_active, password_hash
FROM users
WHERE email = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		userID     pgtype.UUID
		email      string
		role       string
		accountRef pgtype.Text
		isActive   bool
	)
	err := s.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&userID, &email, &role, &accountRef, &isActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &queries.AuthorizedUserView{
		ID:                uuid.UUID(userID.Bytes),
		Email:             email,
		Role:              role,
		PartnerAccountRef: pgconv.StringPtrFromPgtype(accountRef),
		IsActive:          isActive,
	}, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, emailAddr string) (*queries.AuthorizedUserView, string, error) {
	var (
		userID       pgtype.UUID
		email        string
		role         string
		accountRef   pgtype.Text
		isActive     bool
		passwordHash string
	)
	err := s.db.QueryRow(ctx, findUserByEmailSQL, emailAddr).
		Scan(&userID, &email, &role, &accountRef, &isActive, &passwordHash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &queries.AuthorizedUserView{
		ID:                uuid.UUID(userID.Bytes),
		Email:             email,
		Role:              role,
		PartnerAccountRef: pgconv.StringPtrFromPgtype(accountRef),
		IsActive:          isActive,
	}, passwordHash, nil
}
