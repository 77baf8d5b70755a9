package code

import (
	"encoding/json"
	"errors"
	"time"

	"washclub/internal/domain/wash"

	"github.com/google/uuid"
)

var (
	ErrExpired           = errors.New("verification code expired")
	ErrAlreadyUsed       = errors.New("verification code already used")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOwnershipMismatch = errors.New("completer does not match starter")
	ErrNoEntitlementLink = errors.New("code must be bound to exactly one entitlement source")
)

// DefaultTTL bounds how long an issued code stays redeemable.
const DefaultTTL = 30 * time.Minute

// VerificationCode is the single-use token a customer presents at a
// partner location. It is bound to exactly one entitlement source
// (subscription XOR one-time purchase) and moves through a small
// state machine: PENDING -> IN_PROGRESS -> COMPLETED, with PENDING ->
// EXPIRED on lazy expiry. Rows are never deleted.
type VerificationCode struct {
	id             uuid.UUID
	code           string
	userID         uuid.UUID
	washType       wash.Type
	status         Status
	subscriptionID *uuid.UUID
	purchaseID     *uuid.UUID
	partnerID      *uuid.UUID
	expiresAt      time.Time
	startedAt      *time.Time
	completedAt    *time.Time
	createdAt      time.Time
}

func NewVerificationCode(
	codeValue string,
	userID uuid.UUID,
	washType wash.Type,
	subscriptionID *uuid.UUID,
	purchaseID *uuid.UUID,
	now time.Time,
) (*VerificationCode, error) {
	if (subscriptionID == nil) == (purchaseID == nil) {
		return nil, ErrNoEntitlementLink
	}
	return &VerificationCode{
		id:             uuid.New(),
		code:           codeValue,
		userID:         userID,
		washType:       washType,
		status:         StatusPending,
		subscriptionID: subscriptionID,
		purchaseID:     purchaseID,
		expiresAt:      now.Add(DefaultTTL),
		createdAt:      now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	codeValue string,
	userID uuid.UUID,
	washType wash.Type,
	status Status,
	subscriptionID *uuid.UUID,
	purchaseID *uuid.UUID,
	partnerID *uuid.UUID,
	expiresAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	createdAt time.Time,
) *VerificationCode {
	return &VerificationCode{
		id:             id,
		code:           codeValue,
		userID:         userID,
		washType:       washType,
		status:         status,
		subscriptionID: subscriptionID,
		purchaseID:     purchaseID,
		partnerID:      partnerID,
		expiresAt:      expiresAt,
		startedAt:      startedAt,
		completedAt:    completedAt,
		createdAt:      createdAt,
	}
}

// IsExpiredAt reports whether the code's expiry has passed, regardless
// of stored status. Expiry is enforced lazily on the next access.
func (v *VerificationCode) IsExpiredAt(now time.Time) bool {
	return now.After(v.expiresAt)
}

// Start transitions PENDING -> IN_PROGRESS and records the redeeming
// partner. Expiry is rechecked first: a stale code flips to EXPIRED
// and the call fails with ErrExpired.
func (v *VerificationCode) Start(partnerID uuid.UUID, now time.Time) error {
	if v.status != StatusPending {
		if v.status.IsTerminal() || v.status == StatusInProgress {
			return ErrAlreadyUsed
		}
		return ErrInvalidTransition
	}
	if v.IsExpiredAt(now) {
		v.status = StatusExpired
		return ErrExpired
	}
	v.status = StatusInProgress
	v.partnerID = &partnerID
	v.startedAt = &now
	return nil
}

// Complete transitions the code to COMPLETED. Both entry paths are
// accepted: directly from PENDING, or from IN_PROGRESS after an
// explicit Start. When entering from IN_PROGRESS the completer must
// be the partner that started the redemption.
func (v *VerificationCode) Complete(partnerID uuid.UUID, now time.Time) error {
	switch v.status {
	case StatusPending:
		if v.IsExpiredAt(now) {
			v.status = StatusExpired
			return ErrExpired
		}
	case StatusInProgress:
		if v.partnerID == nil || *v.partnerID != partnerID {
			return ErrOwnershipMismatch
		}
	case StatusCompleted, StatusExpired, StatusCancelled:
		return ErrAlreadyUsed
	default:
		return ErrInvalidTransition
	}
	v.status = StatusCompleted
	v.partnerID = &partnerID
	v.completedAt = &now
	return nil
}

// Expire flips a stale PENDING code to EXPIRED.
func (v *VerificationCode) Expire() error {
	if v.status != StatusPending {
		return ErrInvalidTransition
	}
	v.status = StatusExpired
	return nil
}

func (v *VerificationCode) ID() uuid.UUID              { return v.id }
func (v *VerificationCode) Code() string               { return v.code }
func (v *VerificationCode) UserID() uuid.UUID          { return v.userID }
func (v *VerificationCode) WashType() wash.Type        { return v.washType }
func (v *VerificationCode) Status() Status             { return v.status }
func (v *VerificationCode) SubscriptionID() *uuid.UUID { return v.subscriptionID }
func (v *VerificationCode) PurchaseID() *uuid.UUID     { return v.purchaseID }
func (v *VerificationCode) PartnerID() *uuid.UUID      { return v.partnerID }
func (v *VerificationCode) ExpiresAt() time.Time       { return v.expiresAt }
func (v *VerificationCode) StartedAt() *time.Time      { return v.startedAt }
func (v *VerificationCode) CompletedAt() *time.Time    { return v.completedAt }
func (v *VerificationCode) CreatedAt() time.Time       { return v.createdAt }

// EntitlementID returns the bound entitlement source id.
func (v *VerificationCode) EntitlementID() uuid.UUID {
	if v.subscriptionID != nil {
		return *v.subscriptionID
	}
	if v.purchaseID != nil {
		return *v.purchaseID
	}
	return uuid.Nil
}

// QRPayload is the JSON document rendered into the QR image. Purely
// presentational; the code field alone is authoritative.
type QRPayload struct {
	Code          string    `json:"code"`
	EntitlementID uuid.UUID `json:"entitlementId"`
	UserID        uuid.UUID `json:"userId"`
	WashType      string    `json:"washType"`
	Timestamp     time.Time `json:"timestamp"`
}

func (v *VerificationCode) QRPayload() ([]byte, error) {
	return json.Marshal(QRPayload{
		Code:          v.code,
		EntitlementID: v.EntitlementID(),
		UserID:        v.userID,
		WashType:      v.washType.String(),
		Timestamp:     v.createdAt,
	})
}
