package queries

import (
	"context"
	"time"

	"washclub/internal/domain/code"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CodeView struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	UserID         uuid.UUID  `json:"user_id"`
	WashType       string     `json:"wash_type"`
	Status         string     `json:"status"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty"`
	PurchaseID     *uuid.UUID `json:"purchase_id,omitempty"`
	PartnerID      *uuid.UUID `json:"partner_id,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CodeListItem struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	WashType  string    `json:"wash_type"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type PayoutView struct {
	ID             uuid.UUID  `json:"id"`
	PartnerID      uuid.UUID  `json:"partner_id"`
	VerificationID uuid.UUID  `json:"verification_id"`
	AmountCents    int64      `json:"amount_cents"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	TransferRef    *string    `json:"transfer_ref,omitempty"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type PayoutListItem struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	PartnerAccountRef *string   `json:"partner_account_ref,omitempty"`
	IsActive          bool      `json:"is_active"`
}

// CodeViewFromEntity builds the read model from an already-loaded
// entity, for responses inside a write flow.
func CodeViewFromEntity(vc *code.VerificationCode) *CodeView {
	return &CodeView{
		ID:             vc.ID(),
		Code:           vc.Code(),
		UserID:         vc.UserID(),
		WashType:       vc.WashType().String(),
		Status:         vc.Status().String(),
		SubscriptionID: vc.SubscriptionID(),
		PurchaseID:     vc.PurchaseID(),
		PartnerID:      vc.PartnerID(),
		ExpiresAt:      vc.ExpiresAt(),
		StartedAt:      vc.StartedAt(),
		CompletedAt:    vc.CompletedAt(),
		CreatedAt:      vc.CreatedAt(),
	}
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}
