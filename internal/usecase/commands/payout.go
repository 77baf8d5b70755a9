package commands

import (
	"context"
	"log/slog"

	"washclub/internal/domain/payout"
	"washclub/internal/infra"
	"washclub/internal/pkg/clock"
	"washclub/internal/pkg/errs"
	"washclub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPayoutNotFound     = errs.New("payout not found")
	ErrPayoutNotRetryable = errs.New("payout not retryable")
	ErrNoPartnerAccount   = errs.New("partner account not configured")
)

type PayoutCommands interface {
	PayoutProcessor
	// RetryPayout re-attempts the transfer for a FAILED payout.
	RetryPayout(ctx context.Context, payoutID uuid.UUID) error
}

type payoutCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway TransferGateway
	metrics RedemptionMetrics
	clock   clock.Clock
}

func NewPayoutCommands(
	uow shared.UnitOfWork,
	gateway TransferGateway,
	metrics RedemptionMetrics,
	clock clock.Clock,
) PayoutCommands {
	return &payoutCommandsImpl{
		uow:     uow,
		gateway: gateway,
		metrics: metrics,
		clock:   clock,
	}
}

func (p *payoutCommandsImpl) RetryPayout(ctx context.Context, payoutID uuid.UUID) error {
	return p.Process(ctx, payoutID)
}

// Process claims the payout, calls the transfer gateway outside any
// transaction, and records the result. A payout already PROCESSING or
// PAID is not claimable.
func (p *payoutCommandsImpl) Process(ctx context.Context, payoutID uuid.UUID) error {
	claimed, accountRef, err := p.claim(ctx, payoutID)
	if err != nil {
		return err
	}

	if accountRef == nil {
		// Precondition failure, not a transfer attempt.
		p.recordFailure(ctx, claimed, "partner account not configured")
		return ErrNoPartnerAccount
	}

	transferRef, transferErr := p.gateway.Transfer(ctx, *accountRef, claimed.Amount().Cents(), claimed.Currency())
	if transferErr != nil {
		p.recordFailure(ctx, claimed, transferErr.Error())
		return errs.Wrap(transferErr, "payout transfer failed")
	}

	now := p.clock.Now()
	if guardErr := claimed.MarkPaid(transferRef, now); guardErr != nil {
		return errs.Mark(guardErr, ErrPayoutNotRetryable)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payouts().MarkPaid(ctx, tx.DB(), claimed.ID(), transferRef, now)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p.metrics.PayoutRecorded(payout.StatusPaid.String(), claimed.Amount().Cents())
	return nil
}

func (p *payoutCommandsImpl) claim(ctx context.Context, payoutID uuid.UUID) (*payout.Payout, *string, error) {
	var (
		claimed    *payout.Payout
		accountRef *string
	)
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loaded, findErr := tx.Payouts().FindByIDForUpdate(ctx, tx.DB(), payoutID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrPayoutNotFound
			}
			return errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		// The entity guard decides retryability; the conditional
		// update arbitrates concurrent claims.
		if guardErr := loaded.BeginProcessing(); guardErr != nil {
			return ErrPayoutNotRetryable
		}

		affected, claimErr := tx.Payouts().MarkProcessing(ctx, tx.DB(), payoutID)
		if claimErr != nil {
			return errs.Mark(claimErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrPayoutNotRetryable
		}

		ref, refErr := tx.Reads().PartnerAccountRef(ctx, loaded.PartnerID())
		if refErr != nil {
			return errs.Mark(refErr, ErrDatabaseOperationFailed)
		}

		claimed = loaded
		accountRef = ref
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return claimed, accountRef, nil
}

// recordFailure moves the claimed payout to FAILED through the entity
// guard and persists the result. The original error is reported to the
// caller, so persistence problems are only logged.
func (p *payoutCommandsImpl) recordFailure(ctx context.Context, claimed *payout.Payout, reason string) {
	now := p.clock.Now()
	if guardErr := claimed.MarkFailed(reason, now); guardErr != nil {
		slog.Error("failed to mark payout failed", "payout_id", claimed.ID(), "error", guardErr.Error())
		return
	}

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payouts().MarkFailed(ctx, tx.DB(), claimed.ID(), reason, now)
	})
	if err != nil {
		slog.Error("failed to record payout failure", "payout_id", claimed.ID(), "error", err.Error())
		return
	}

	p.metrics.PayoutRecorded(claimed.Status().String(), claimed.Amount().Cents())
}
