package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"washclub/internal/domain/code"
	"washclub/internal/domain/entitlement"
	"washclub/internal/domain/payout"
	"washclub/internal/domain/wash"
	"washclub/internal/infra"
	"washclub/internal/pkg/clock"
	"washclub/internal/pkg/errs"
	"washclub/internal/usecase/queries"
	"washclub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoEntitlement           = errs.New("no entitlement for wash type")
	ErrQuotaExhausted          = errs.New("entitlement exhausted")
	ErrCodeNotFound            = errs.New("verification code not found")
	ErrCodeExpired             = errs.New("verification code expired")
	ErrCodeAlreadyUsed         = errs.New("verification code already used")
	ErrOwnershipMismatch       = errs.New("completer does not match starter")
	ErrCodeGenerationExhausted = errs.New("code generation exhausted")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type IssueCodeResult struct {
	Code  *queries.CodeView
	QRPNG []byte
}

type VerifyCodeResult struct {
	Code             *queries.CodeView
	Eligible         bool
	IneligibleReason *string
}

type CompleteRedemptionResult struct {
	Code           *queries.CodeView
	VerificationID uuid.UUID
	PayoutID       uuid.UUID
	AmountCents    int64
	Currency       string
}

type RedemptionCommands interface {
	IssueCode(ctx context.Context, userID uuid.UUID, washType wash.Type) (*IssueCodeResult, error)
	VerifyCode(ctx context.Context, partnerID uuid.UUID, codeValue string) (*VerifyCodeResult, error)
	StartRedemption(ctx context.Context, partnerID uuid.UUID, codeValue string) (*queries.CodeView, error)
	CompleteRedemption(ctx context.Context, partnerID uuid.UUID, codeValue string) (*CompleteRedemptionResult, error)
}

type redemptionCommandsImpl struct {
	uow         shared.UnitOfWork
	generator   code.Generator
	calculator  payout.Calculator
	codeQueries queries.CodeQueries
	qrEncoder   QREncoder
	processor   PayoutProcessor
	notifier    Notifier
	metrics     RedemptionMetrics
	clock       clock.Clock
}

func NewRedemptionCommands(
	uow shared.UnitOfWork,
	generator code.Generator,
	calculator payout.Calculator,
	codeQueries queries.CodeQueries,
	qrEncoder QREncoder,
	processor PayoutProcessor,
	notifier Notifier,
	metrics RedemptionMetrics,
	clock clock.Clock,
) RedemptionCommands {
	return &redemptionCommandsImpl{
		uow:         uow,
		generator:   generator,
		calculator:  calculator,
		codeQueries: codeQueries,
		qrEncoder:   qrEncoder,
		processor:   processor,
		notifier:    notifier,
		metrics:     metrics,
		clock:       clock,
	}
}

func (r *redemptionCommandsImpl) IssueCode(ctx context.Context, userID uuid.UUID, washType wash.Type) (*IssueCodeResult, error) {
	now := r.clock.Now()

	reads := r.uow.CommandReads()
	subs, err := reads.SubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	purchases, err := reads.PurchasesByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ent, err := entitlement.Resolve(now, washType, subs, purchases)
	if err != nil {
		switch {
		case errors.Is(err, entitlement.ErrExhausted):
			return nil, errs.Mark(err, ErrQuotaExhausted)
		default:
			return nil, errs.Mark(err, ErrNoEntitlement)
		}
	}

	var issued *code.VerificationCode
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if expireErr := r.expireSiblingCodes(ctx, tx, ent); expireErr != nil {
			return errs.Mark(expireErr, ErrDatabaseOperationFailed)
		}

		// The unique constraint on the code column is authoritative;
		// the insert uses ON CONFLICT DO NOTHING so a collision shows
		// up as zero affected rows and we draw a new value.
		for attempt := 0; attempt < code.MaxGenerateAttempts; attempt++ {
			value, genErr := r.generator.Generate()
			if genErr != nil {
				return errs.Mark(genErr, ErrCodeGenerationExhausted)
			}

			vc, newErr := code.NewVerificationCode(value, userID, washType, ent.SubscriptionID, ent.PurchaseID, now)
			if newErr != nil {
				return errs.Mark(newErr, ErrDomainValidation)
			}

			affected, createErr := tx.Codes().Create(ctx, tx.DB(), vc)
			if createErr != nil {
				return errs.Mark(createErr, ErrDatabaseOperationFailed)
			}
			if affected == 0 {
				continue
			}

			issued = vc
			return nil
		}
		return ErrCodeGenerationExhausted
	})
	if err != nil {
		return nil, err
	}

	r.metrics.CodeIssued(washType.String())

	payload, err := issued.QRPayload()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	qrPNG, err := r.qrEncoder.EncodePNG(payload)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := r.codeQueries.GetByValueSystem(ctx, issued.Code())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &IssueCodeResult{Code: view, QRPNG: qrPNG}, nil
}

func (r *redemptionCommandsImpl) expireSiblingCodes(ctx context.Context, tx shared.Tx, ent *entitlement.Entitlement) error {
	// At most one live PENDING code per entitlement at any time.
	var err error
	switch {
	case ent.SubscriptionID != nil:
		_, err = tx.Codes().ExpirePendingBySubscription(ctx, tx.DB(), *ent.SubscriptionID)
	case ent.PurchaseID != nil:
		_, err = tx.Codes().ExpirePendingByPurchase(ctx, tx.DB(), *ent.PurchaseID)
	}
	return err
}

func (r *redemptionCommandsImpl) VerifyCode(ctx context.Context, partnerID uuid.UUID, codeValue string) (*VerifyCodeResult, error) {
	now := r.clock.Now()

	var (
		outcomeErr error
		result     *VerifyCodeResult
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vc, findErr := r.findCode(ctx, tx, codeValue)
		if findErr != nil {
			return findErr
		}

		if vc.Status() == code.StatusPending && vc.IsExpiredAt(now) {
			if _, expireErr := tx.Codes().MarkExpired(ctx, tx.DB(), vc.ID()); expireErr != nil {
				return errs.Mark(expireErr, ErrDatabaseOperationFailed)
			}
			outcomeErr = ErrCodeExpired
			return nil
		}
		if vc.Status() != code.StatusPending {
			outcomeErr = ErrCodeAlreadyUsed
			return nil
		}

		eligible, reason, checkErr := r.checkEligibility(ctx, tx, vc, now)
		if checkErr != nil {
			return checkErr
		}

		result = &VerifyCodeResult{
			Code:             queries.CodeViewFromEntity(vc),
			Eligible:         eligible,
			IneligibleReason: reason,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcomeErr != nil {
		return nil, outcomeErr
	}
	return result, nil
}

func (r *redemptionCommandsImpl) checkEligibility(ctx context.Context, tx shared.Tx, vc *code.VerificationCode, now time.Time) (bool, *string, error) {
	if subID := vc.SubscriptionID(); subID != nil {
		spec, err := tx.Reads().SubscriptionByID(ctx, *subID)
		if err != nil {
			return false, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !spec.CanRedeem(vc.WashType(), now) {
			reason := "subscription inactive or quota exhausted"
			return false, &reason, nil
		}
		return true, nil, nil
	}

	spec, err := tx.Reads().PurchaseByID(ctx, *vc.PurchaseID())
	if err != nil {
		return false, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !spec.CanRedeem(vc.WashType()) {
		reason := "purchase already used or not completed"
		return false, &reason, nil
	}
	return true, nil, nil
}

func (r *redemptionCommandsImpl) StartRedemption(ctx context.Context, partnerID uuid.UUID, codeValue string) (*queries.CodeView, error) {
	now := r.clock.Now()

	var (
		outcomeErr error
		view       *queries.CodeView
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vc, findErr := r.findCode(ctx, tx, codeValue)
		if findErr != nil {
			return findErr
		}

		if startErr := vc.Start(partnerID, now); startErr != nil {
			outcomeErr = r.recordTransitionFailure(ctx, tx, vc, startErr)
			return nil
		}

		affected, updateErr := tx.Codes().MarkInProgress(ctx, tx.DB(), vc.ID(), partnerID, now)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			outcomeErr = ErrCodeAlreadyUsed
			return nil
		}

		view = queries.CodeViewFromEntity(vc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcomeErr != nil {
		return nil, outcomeErr
	}
	return view, nil
}

func (r *redemptionCommandsImpl) CompleteRedemption(ctx context.Context, partnerID uuid.UUID, codeValue string) (*CompleteRedemptionResult, error) {
	now := r.clock.Now()

	var (
		outcomeErr error
		result     *CompleteRedemptionResult
		settings   *shared.RedemptionSettings
		customerID uuid.UUID
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vc, findErr := r.findCode(ctx, tx, codeValue)
		if findErr != nil {
			return findErr
		}

		if completeErr := vc.Complete(partnerID, now); completeErr != nil {
			outcomeErr = r.recordTransitionFailure(ctx, tx, vc, completeErr)
			return nil
		}

		// Conditional update re-checks the pre-state so a concurrent
		// completion loses cleanly.
		affected, updateErr := tx.Codes().MarkCompleted(ctx, tx.DB(), vc.ID(), partnerID, now)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			outcomeErr = ErrCodeAlreadyUsed
			return nil
		}

		policy, consumeErr := r.consumeEntitlement(ctx, tx, vc, now)
		if consumeErr != nil {
			return consumeErr
		}

		amountCents := r.calculator.AmountCents(*policy, vc.WashType())
		money, moneyErr := payout.NewMoney(amountCents)
		if moneyErr != nil {
			return errs.Mark(moneyErr, ErrDomainValidation)
		}

		verificationID, verErr := tx.Verifications().Create(ctx, tx.DB(), shared.NewVerification{
			CodeID:      vc.ID(),
			UserID:      vc.UserID(),
			PartnerID:   partnerID,
			WashType:    vc.WashType(),
			AmountCents: amountCents,
		})
		if verErr != nil {
			return errs.Mark(verErr, ErrDatabaseOperationFailed)
		}

		p := payout.NewPayout(partnerID, verificationID, money, now)
		payoutID, payoutErr := tx.Payouts().Create(ctx, tx.DB(), p)
		if payoutErr != nil {
			return errs.Mark(payoutErr, ErrDatabaseOperationFailed)
		}

		loaded, settingsErr := tx.Reads().RedemptionSettings(ctx)
		if settingsErr != nil {
			return errs.Mark(settingsErr, ErrDatabaseOperationFailed)
		}
		settings = loaded

		if jobErr := r.enqueueCompletionJob(ctx, tx, vc, amountCents, now); jobErr != nil {
			return errs.Mark(jobErr, ErrDatabaseOperationFailed)
		}

		customerID = vc.UserID()
		result = &CompleteRedemptionResult{
			Code:           queries.CodeViewFromEntity(vc),
			VerificationID: verificationID,
			PayoutID:       payoutID,
			AmountCents:    amountCents,
			Currency:       payout.DefaultCurrency,
		}
		return nil
	})
	if err != nil {
		r.metrics.RedemptionFinished(outcomeLabel(err))
		return nil, err
	}
	if outcomeErr != nil {
		r.metrics.RedemptionFinished(outcomeLabel(outcomeErr))
		return nil, outcomeErr
	}

	r.metrics.RedemptionFinished("completed")
	r.metrics.PayoutRecorded(payout.StatusPending.String(), result.AmountCents)

	// Post-commit side effects. Neither the transfer nor the push may
	// fail the already-committed redemption.
	if settings != nil && settings.AutoPayoutEnabled {
		payoutID := result.PayoutID
		go func() {
			bgCtx := context.WithoutCancel(ctx)
			if processErr := r.processor.Process(bgCtx, payoutID); processErr != nil {
				slog.Warn("auto payout transfer failed", "payout_id", payoutID, "error", processErr.Error())
			}
		}()
	}
	r.notifier.Push(ctx, customerID, "redemption_completed", "Your wash has been redeemed")
	r.notifier.Push(ctx, partnerID, "redemption_completed", "Redemption completed")

	return result, nil
}

func (r *redemptionCommandsImpl) findCode(ctx context.Context, tx shared.Tx, codeValue string) (*code.VerificationCode, error) {
	vc, err := tx.Codes().FindByValueForUpdate(ctx, tx.DB(), codeValue)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return vc, nil
}

// recordTransitionFailure persists the lazy expiry flip and maps a
// domain transition error to its usecase sentinel. The enclosing
// transaction commits so the EXPIRED status is visible.
func (r *redemptionCommandsImpl) recordTransitionFailure(ctx context.Context, tx shared.Tx, vc *code.VerificationCode, transitionErr error) error {
	switch {
	case errors.Is(transitionErr, code.ErrExpired):
		if _, err := tx.Codes().MarkExpired(ctx, tx.DB(), vc.ID()); err != nil {
			slog.Warn("failed to persist code expiry", "code_id", vc.ID(), "error", err.Error())
		}
		return ErrCodeExpired
	case errors.Is(transitionErr, code.ErrOwnershipMismatch):
		return ErrOwnershipMismatch
	case errors.Is(transitionErr, code.ErrAlreadyUsed), errors.Is(transitionErr, code.ErrInvalidTransition):
		return ErrCodeAlreadyUsed
	default:
		return errs.Mark(transitionErr, ErrDomainValidation)
	}
}

// consumeEntitlement re-validates and consumes the bound entitlement
// in the same transaction as the status transition, then returns the
// rate policy for the payout amount.
func (r *redemptionCommandsImpl) consumeEntitlement(ctx context.Context, tx shared.Tx, vc *code.VerificationCode, now time.Time) (*payout.RatePolicy, error) {
	if subID := vc.SubscriptionID(); subID != nil {
		affected, err := tx.Subscriptions().ConsumeQuota(ctx, tx.DB(), *subID, vc.WashType(), now)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return nil, ErrQuotaExhausted
		}
		policy, err := tx.Reads().PlanPolicyBySubscription(ctx, *subID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return policy, nil
	}

	purchaseID := *vc.PurchaseID()
	affected, err := tx.Purchases().MarkUsed(ctx, tx.DB(), purchaseID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, ErrQuotaExhausted
	}
	policy, err := tx.Reads().ServicePolicyByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return policy, nil
}

func (r *redemptionCommandsImpl) enqueueCompletionJob(ctx context.Context, tx shared.Tx, vc *code.VerificationCode, amountCents int64, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"code_id":      vc.ID(),
		"user_id":      vc.UserID(),
		"wash_type":    vc.WashType().String(),
		"amount_cents": amountCents,
		"type":         "redemption_completed",
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "push", "redemption_completed", payload, now)
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrCodeExpired):
		return "expired"
	case errors.Is(err, ErrCodeAlreadyUsed):
		return "already_used"
	case errors.Is(err, ErrOwnershipMismatch):
		return "ownership_mismatch"
	case errors.Is(err, ErrQuotaExhausted):
		return "quota_exhausted"
	default:
		return "error"
	}
}
