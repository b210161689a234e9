//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lendhub/internal/infra/gateway"
	"lendhub/internal/pkg/config"
	"lendhub/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewClient(config.GatewayConfig{
		BaseURL:        srv.URL,
		ClientID:       "client-1",
		APIKey:         "secret",
		Currency:       "EUR",
		TimeoutSeconds: 5,
	})
}

func TestClient_CreatePreauthorization(t *testing.T) {
	var captured map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/preauthorizations", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-1", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"preauth_1","status":"SUCCEEDED","created_date":1700000000}`))
	})

	tx, err := client.CreatePreauthorization(context.Background(), "acct_9", 4900, "EUR")
	require.NoError(t, err)

	assert.Equal(t, "preauth_1", tx.ResourceID)
	assert.Equal(t, commands.GatewayStatusSucceeded, tx.Status)
	assert.Equal(t, int64(1700000000), tx.CreatedDate.Unix())
	assert.JSONEq(t, `{"id":"preauth_1","status":"SUCCEEDED","created_date":1700000000}`, string(tx.Raw))

	assert.Equal(t, "acct_9", captured["account_ref"])
	assert.Equal(t, float64(4900), captured["amount"])
	assert.Equal(t, "EUR", captured["currency"])
}

func TestClient_FailedStatusIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"payin_1","status":"FAILED","result_code":"101105"}`))
	})

	tx, err := client.CapturePayin(context.Background(), "preauth_1", "acct_9", 12000, 1800, "wallet_owner")
	require.NoError(t, err)

	assert.True(t, tx.Failed())
	assert.Contains(t, string(tx.Raw), "101105")
}

func TestClient_RefundPayinOmitsAmountsForFullRefund(t *testing.T) {
	var captured map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payins/payin_1/refunds", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"refund_1","status":"SUCCEEDED"}`))
	})

	_, err := client.RefundPayin(context.Background(), "payin_1", "acct_9", nil, nil)
	require.NoError(t, err)

	assert.NotContains(t, captured, "amount")
	assert.NotContains(t, captured, "fees")
}

func TestClient_RefundPayinSendsPartialAmounts(t *testing.T) {
	var captured map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"refund_2","status":"SUCCEEDED"}`))
	})

	amount := int64(5000)
	fees := int64(0)
	_, err := client.RefundPayin(context.Background(), "payin_1", "acct_9", &amount, &fees)
	require.NoError(t, err)

	assert.Equal(t, float64(5000), captured["amount"])
	assert.Equal(t, float64(0), captured["fees"])
}

func TestClient_NonSuccessStatusCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	_, err := client.CreatePayout(context.Background(), "acct_9", "wallet_owner", "bank_1", 11400)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_FetchPreauthorization(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/preauthorizations/preauth_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"preauth_1","status":"SUCCEEDED","account_ref":"acct_9","card_ref":"card_3"}`))
	})

	details, err := client.FetchPreauthorization(context.Background(), "preauth_1")
	require.NoError(t, err)

	assert.Equal(t, "preauth_1", details.ResourceID)
	assert.Equal(t, "acct_9", details.AccountRef)
	assert.Equal(t, "card_3", details.CardRef)
	assert.Equal(t, commands.GatewayStatusSucceeded, details.Status)
}
