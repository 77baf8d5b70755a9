package response

import "washclub/internal/usecase/queries"

type IssueCodeResponse struct {
	Code *queries.CodeView `json:"code"`
	// QRPNG is the rendered QR image, base64-encoded PNG.
	QRPNG string `json:"qr_png"`
}

type VerifyCodeResponse struct {
	Code             *queries.CodeView `json:"code"`
	Eligible         bool              `json:"eligible"`
	IneligibleReason *string           `json:"ineligible_reason,omitempty"`
}

type CodeListResponse struct {
	Codes []*queries.CodeListItem `json:"codes"`
}

type CompleteRedemptionResponse struct {
	Code           *queries.CodeView `json:"code"`
	VerificationID string            `json:"verification_id"`
	PayoutID       string            `json:"payout_id"`
	AmountCents    int64             `json:"amount_cents"`
	Currency       string            `json:"currency"`
}
