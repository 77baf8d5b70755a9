//go:build unit || e2e

package builder

import (
	"washclub/internal/domain/user"
	"washclub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email             string
	PasswordHash      string
	Role              string
	PartnerAccountRef *string
	IsActive          bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.PartnerAccountRef), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:                uuid.New(),
		Email:             u.Email,
		Role:              u.Role,
		PartnerAccountRef: u.PartnerAccountRef,
		IsActive:          u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsPartner(accountRef string) *UserBuilder {
	u.Role = "partner"
	u.PartnerAccountRef = &accountRef
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
