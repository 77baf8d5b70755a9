package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"washclub/internal/pkg/config"
	"washclub/internal/pkg/errs"
)

// HTTPGateway calls the external payout-transfer service.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGateway(cfg config.TransferConfig) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type transferRequest struct {
	AccountRef  string `json:"account_ref"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type transferResponse struct {
	TransferID string `json:"transfer_id"`
}

func (g *HTTPGateway) Transfer(ctx context.Context, accountRef string, amountCents int64, currency string) (string, error) {
	body, err := json.Marshal(transferRequest{
		AccountRef:  accountRef,
		AmountCents: amountCents,
		Currency:    currency,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal transfer request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build transfer request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "transfer request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.New(fmt.Sprintf("transfer rejected: status %d: %s", resp.StatusCode, string(snippet)))
	}

	var parsed transferResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode transfer response")
	}
	if parsed.TransferID == "" {
		return "", errs.New("transfer response missing transfer id")
	}
	return parsed.TransferID, nil
}
