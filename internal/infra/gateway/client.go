// Package gateway is the HTTP adapter for the external payment
// provider. It translates between the orchestrator's port and the
// provider's REST API; amounts cross as integer minor units and the raw
// response body is always kept for diagnostics. A FAILED status is not
// an error at this layer; the orchestrator decides what it means.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lendhub/internal/pkg/config"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/commands"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	apiKey     string
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    cfg.BaseURL,
		clientID:   cfg.ClientID,
		apiKey:     cfg.APIKey,
	}
}

type transactionResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	CreatedDate   int64  `json:"created_date"`
	ExecutionDate int64  `json:"execution_date"`
}

type preauthorizationResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	AccountRef string `json:"account_ref"`
	CardRef    string `json:"card_ref"`
}

func (c *Client) CreatePreauthorization(ctx context.Context, accountRef string, amountMinor int64, currency string) (commands.GatewayTransaction, error) {
	return c.postTransaction(ctx, "/preauthorizations", map[string]any{
		"account_ref": accountRef,
		"amount":      amountMinor,
		"currency":    currency,
	})
}

func (c *Client) FetchPreauthorization(ctx context.Context, resourceID string) (commands.PreauthorizationDetails, error) {
	body, err := c.do(ctx, http.MethodGet, "/preauthorizations/"+resourceID, nil)
	if err != nil {
		return commands.PreauthorizationDetails{}, err
	}
	var resp preauthorizationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return commands.PreauthorizationDetails{}, errs.Wrap(err, "failed to decode preauthorization")
	}
	return commands.PreauthorizationDetails{
		ResourceID: resp.ID,
		AccountRef: resp.AccountRef,
		CardRef:    resp.CardRef,
		Status:     commands.GatewayStatus(resp.Status),
	}, nil
}

func (c *Client) CancelPreauthorization(ctx context.Context, resourceID string) (commands.GatewayTransaction, error) {
	body, err := c.do(ctx, http.MethodPut, "/preauthorizations/"+resourceID+"/cancel", nil)
	if err != nil {
		return commands.GatewayTransaction{}, err
	}
	return decodeTransaction(body)
}

func (c *Client) CapturePayin(ctx context.Context, preauthID, payerAccountRef string, amountMinor, feesMinor int64, destinationWalletRef string) (commands.GatewayTransaction, error) {
	return c.postTransaction(ctx, "/payins", map[string]any{
		"preauthorization_id": preauthID,
		"account_ref":         payerAccountRef,
		"amount":              amountMinor,
		"fees":                feesMinor,
		"credited_wallet_ref": destinationWalletRef,
	})
}

func (c *Client) RefundPayin(ctx context.Context, payinID, payerAccountRef string, amountMinor, feesMinor *int64) (commands.GatewayTransaction, error) {
	payload := map[string]any{
		"account_ref": payerAccountRef,
	}
	// Omitting amount and fees requests a full refund.
	if amountMinor != nil {
		payload["amount"] = *amountMinor
	}
	if feesMinor != nil {
		payload["fees"] = *feesMinor
	}
	return c.postTransaction(ctx, "/payins/"+payinID+"/refunds", payload)
}

func (c *Client) CreateTransfer(ctx context.Context, payerWalletRef, receiverWalletRef string, amountMinor, feesMinor int64) (commands.GatewayTransaction, error) {
	return c.postTransaction(ctx, "/transfers", map[string]any{
		"debited_wallet_ref":  payerWalletRef,
		"credited_wallet_ref": receiverWalletRef,
		"amount":              amountMinor,
		"fees":                feesMinor,
	})
}

func (c *Client) RefundTransfer(ctx context.Context, transferID, payerAccountRef string) (commands.GatewayTransaction, error) {
	return c.postTransaction(ctx, "/transfers/"+transferID+"/refunds", map[string]any{
		"account_ref": payerAccountRef,
	})
}

func (c *Client) CreatePayout(ctx context.Context, payerAccountRef, sourceWalletRef, bankAccountRef string, amountMinor int64) (commands.GatewayTransaction, error) {
	return c.postTransaction(ctx, "/payouts", map[string]any{
		"account_ref":        payerAccountRef,
		"debited_wallet_ref": sourceWalletRef,
		"bank_account_ref":   bankAccountRef,
		"amount":             amountMinor,
	})
}

func (c *Client) postTransaction(ctx context.Context, path string, payload map[string]any) (commands.GatewayTransaction, error) {
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return commands.GatewayTransaction{}, err
	}
	return decodeTransaction(body)
}

func (c *Client) do(ctx context.Context, method, path string, payload map[string]any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode gateway request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build gateway request")
	}
	req.SetBasicAuth(c.clientID, c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "gateway request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read gateway response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.New(fmt.Sprintf("gateway returned %d: %s", resp.StatusCode, body))
	}
	return body, nil
}

func decodeTransaction(body []byte) (commands.GatewayTransaction, error) {
	var resp transactionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return commands.GatewayTransaction{}, errs.Wrap(err, "failed to decode gateway response")
	}
	tx := commands.GatewayTransaction{
		ResourceID: resp.ID,
		Status:     commands.GatewayStatus(resp.Status),
		Raw:        json.RawMessage(body),
	}
	if resp.CreatedDate > 0 {
		tx.CreatedDate = time.Unix(resp.CreatedDate, 0).UTC()
	}
	if resp.ExecutionDate > 0 {
		tx.ExecutionDate = time.Unix(resp.ExecutionDate, 0).UTC()
	}
	return tx, nil
}
