package payout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotRetryable        = errors.New("payout is not retryable")
	ErrInvalidStatusChange = errors.New("invalid payout status change")
)

// Payout is money owed to a partner for one completed redemption.
// Exactly one payout references each verification record. Lifecycle:
// PENDING -> PROCESSING -> PAID | FAILED; FAILED payouts stay
// retryable.
type Payout struct {
	id             uuid.UUID
	partnerID      uuid.UUID
	verificationID uuid.UUID
	amount         Money
	currency       string
	status         Status
	failureReason  *string
	transferRef    *string
	scheduledAt    time.Time
	processedAt    *time.Time
	createdAt      time.Time
}

func NewPayout(partnerID, verificationID uuid.UUID, amount Money, now time.Time) *Payout {
	return &Payout{
		id:             uuid.New(),
		partnerID:      partnerID,
		verificationID: verificationID,
		amount:         amount,
		currency:       DefaultCurrency,
		status:         StatusPending,
		scheduledAt:    now,
		createdAt:      now,
	}
}

func Reconstruct(
	id uuid.UUID,
	partnerID uuid.UUID,
	verificationID uuid.UUID,
	amount Money,
	currency string,
	status Status,
	failureReason *string,
	transferRef *string,
	scheduledAt time.Time,
	processedAt *time.Time,
	createdAt time.Time,
) *Payout {
	return &Payout{
		id:             id,
		partnerID:      partnerID,
		verificationID: verificationID,
		amount:         amount,
		currency:       currency,
		status:         status,
		failureReason:  failureReason,
		transferRef:    transferRef,
		scheduledAt:    scheduledAt,
		processedAt:    processedAt,
		createdAt:      createdAt,
	}
}

// BeginProcessing moves a PENDING or FAILED payout into PROCESSING
// for a transfer attempt.
func (p *Payout) BeginProcessing() error {
	switch p.status {
	case StatusPending, StatusFailed:
		p.status = StatusProcessing
		p.failureReason = nil
		return nil
	case StatusProcessing, StatusPaid:
		return ErrNotRetryable
	default:
		return ErrInvalidStatusChange
	}
}

func (p *Payout) MarkPaid(transferRef string, now time.Time) error {
	if p.status != StatusProcessing {
		return ErrInvalidStatusChange
	}
	p.status = StatusPaid
	p.transferRef = &transferRef
	p.processedAt = &now
	return nil
}

func (p *Payout) MarkFailed(reason string, now time.Time) error {
	if p.status != StatusProcessing {
		return ErrInvalidStatusChange
	}
	p.status = StatusFailed
	p.failureReason = &reason
	p.processedAt = &now
	return nil
}

func (p *Payout) ID() uuid.UUID             { return p.id }
func (p *Payout) PartnerID() uuid.UUID      { return p.partnerID }
func (p *Payout) VerificationID() uuid.UUID { return p.verificationID }
func (p *Payout) Amount() Money             { return p.amount }
func (p *Payout) Currency() string          { return p.currency }
func (p *Payout) Status() Status            { return p.status }
func (p *Payout) FailureReason() *string    { return p.failureReason }
func (p *Payout) TransferRef() *string      { return p.transferRef }
func (p *Payout) ScheduledAt() time.Time    { return p.scheduledAt }
func (p *Payout) ProcessedAt() *time.Time   { return p.processedAt }
func (p *Payout) CreatedAt() time.Time      { return p.createdAt }
