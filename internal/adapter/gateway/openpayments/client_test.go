package openpayments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"condo-settlement/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNetwork serves two wallet addresses whose resource server is the
// test server itself.
type fakeNetwork struct {
	srv      *httptest.Server
	mu       sync.Mutex
	lastAuth map[string]string
	lastBody map[string]map[string]any
	outgoing map[string]any
}

func newFakeNetwork(t *testing.T) *fakeNetwork {
	t.Helper()
	fn := &fakeNetwork{
		lastAuth: map[string]string{},
		lastBody: map[string]map[string]any{},
		outgoing: map[string]any{
			"id":          "",
			"failed":      false,
			"debitAmount": map[string]any{"value": "10000", "assetCode": "USD", "assetScale": 2},
			"sentAmount":  map[string]any{"value": "0", "assetCode": "USD", "assetScale": 2},
		},
	}

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	record := func(r *http.Request) {
		fn.mu.Lock()
		defer fn.mu.Unlock()
		fn.lastAuth[r.URL.Path] = r.Header.Get("Authorization")
		if r.Body != nil && r.Method == http.MethodPost {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			fn.lastBody[r.URL.Path] = body
		}
	}
	walletDoc := func(name string) map[string]any {
		return map[string]any{
			"id":             fn.srv.URL + "/" + name,
			"publicName":     name,
			"assetCode":      "USD",
			"assetScale":     2,
			"authServer":     fn.srv.URL + "/auth",
			"resourceServer": fn.srv.URL + "/",
		}
	}

	mux.HandleFunc("/alice", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, walletDoc("alice"))
	})
	mux.HandleFunc("/treasury", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, walletDoc("treasury"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	})
	mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":             fn.srv.URL + "/incoming-payments/ip-1",
			"walletAddress":  fn.srv.URL + "/treasury",
			"incomingAmount": map[string]any{"value": "10000", "assetCode": "USD", "assetScale": 2},
			"completed":      false,
		})
	})
	mux.HandleFunc("/quotes", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":            fn.srv.URL + "/quotes/q-1",
			"debitAmount":   map[string]any{"value": "10025", "assetCode": "USD", "assetScale": 2},
			"receiveAmount": map[string]any{"value": "10000", "assetCode": "USD", "assetScale": 2},
		})
	})
	mux.HandleFunc("/outgoing-payments", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":      fn.srv.URL + "/outgoing-payments/op-1",
			"quoteId": fn.srv.URL + "/quotes/q-1",
			"failed":  false,
		})
	})
	mux.HandleFunc("/outgoing-payments/op-1", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		fn.mu.Lock()
		doc := fn.outgoing
		fn.mu.Unlock()
		writeJSON(w, http.StatusOK, doc)
	})

	fn.srv = httptest.NewServer(mux)
	t.Cleanup(fn.srv.Close)
	return fn
}

func (fn *fakeNetwork) auth(path string) string {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	return fn.lastAuth[path]
}

func (fn *fakeNetwork) body(path string) map[string]any {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	return fn.lastBody[path]
}

func newTestClient(token string) *Client {
	return New(Config{AccessToken: token, Timeout: 5 * time.Second}, zerolog.Nop())
}

func TestGetAddressInfo(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("")

	info, err := c.GetAddressInfo(context.Background(), fn.srv.URL+"/alice")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, fn.srv.URL+"/alice", info.ID)
	assert.Equal(t, "USD", info.AssetCode)
	assert.Equal(t, 2, info.AssetScale)
	assert.Equal(t, fn.srv.URL+"/", info.ResourceServer)
}

func TestGetAddressInfo_UnknownAddress(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("")

	info, err := c.GetAddressInfo(context.Background(), fn.srv.URL+"/nobody")
	require.NoError(t, err)
	assert.Nil(t, info)

	ok, err := c.ValidateAddress(context.Background(), fn.srv.URL+"/nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAddressInfo_ServerError(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("")

	_, err := c.GetAddressInfo(context.Background(), fn.srv.URL+"/broken")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Body, "boom")
}

func TestReserveIncoming_UsesDefaultGrantAndMetadata(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("default-grant")

	res, err := c.ReserveIncoming(context.Background(), ports.ReserveRequest{
		ReceiverAddress: fn.srv.URL + "/treasury",
		Amount:          10000,
		AssetCode:       "USD",
		AssetScale:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, fn.srv.URL+"/incoming-payments/ip-1", res.ID)
	assert.Equal(t, int64(10000), res.Amount)
	assert.False(t, res.Completed)

	assert.Equal(t, "GNAP default-grant", fn.auth("/incoming-payments"))
	body := fn.body("/incoming-payments")
	incoming := body["incomingAmount"].(map[string]any)
	assert.Equal(t, "10000", incoming["value"])
	meta := body["metadata"].(map[string]any)
	assert.Equal(t, "Payment for utilities", meta["description"])
	assert.Equal(t, "condo-settlement", meta["source"])
	assert.Equal(t, "utility-payment", meta["type"])
}

func TestQuoteTransfer_PrefersWalletGrant(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("default-grant")

	q, err := c.QuoteTransfer(context.Background(), ports.QuoteRequest{
		SenderAddress: fn.srv.URL + "/alice",
		ReservationID: fn.srv.URL + "/incoming-payments/ip-1",
		Amount:        10000,
		AssetCode:     "USD",
		AssetScale:    2,
		AccessToken:   "alice-grant",
	})
	require.NoError(t, err)
	assert.Equal(t, fn.srv.URL+"/quotes/q-1", q.ID)
	assert.Equal(t, int64(10025), q.DebitAmount)
	assert.Equal(t, int64(10000), q.ReceiveAmount)

	assert.Equal(t, "GNAP alice-grant", fn.auth("/quotes"))
	body := fn.body("/quotes")
	assert.Equal(t, "ilp", body["method"])
	assert.Equal(t, fn.srv.URL+"/incoming-payments/ip-1", body["receiver"])
}

func TestQuoteTransfer_UnknownSender(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("")

	_, err := c.QuoteTransfer(context.Background(), ports.QuoteRequest{
		SenderAddress: fn.srv.URL + "/nobody",
		Amount:        100,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown wallet address")
}

func TestExecuteTransfer(t *testing.T) {
	fn := newFakeNetwork(t)
	c := newTestClient("default-grant")

	out, err := c.ExecuteTransfer(context.Background(), ports.ExecuteRequest{
		SenderAddress: fn.srv.URL + "/alice",
		QuoteID:       fn.srv.URL + "/quotes/q-1",
	})
	require.NoError(t, err)
	assert.Equal(t, fn.srv.URL+"/outgoing-payments/op-1", out.ID)
	assert.Equal(t, ports.TransferStatePending, out.State)
	assert.False(t, out.Failed)
	assert.Equal(t, fn.srv.URL+"/quotes/q-1", fn.body("/outgoing-payments")["quoteId"])
}

func TestGetTransferStatus_DerivesState(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]any
		expected string
	}{
		{
			name:     "explicit state wins",
			doc:      map[string]any{"state": "completed", "failed": true},
			expected: ports.TransferStateCompleted,
		},
		{
			name:     "failed flag",
			doc:      map[string]any{"failed": true},
			expected: ports.TransferStateFailed,
		},
		{
			name: "fully sent",
			doc: map[string]any{
				"debitAmount": map[string]any{"value": "10000"},
				"sentAmount":  map[string]any{"value": "10000"},
			},
			expected: ports.TransferStateCompleted,
		},
		{
			name: "partially sent",
			doc: map[string]any{
				"debitAmount": map[string]any{"value": "10000"},
				"sentAmount":  map[string]any{"value": "2500"},
			},
			expected: ports.TransferStatePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := newFakeNetwork(t)
			fn.mu.Lock()
			fn.outgoing = tt.doc
			fn.mu.Unlock()
			c := newTestClient("")

			st, err := c.GetTransferStatus(context.Background(), fn.srv.URL+"/outgoing-payments/op-1", fn.srv.URL+"/alice", "alice-grant")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, st.State)
			assert.Equal(t, "GNAP alice-grant", fn.auth("/outgoing-payments/op-1"))
		})
	}
}

func TestOutgoingPaymentDoc_StateNilAmounts(t *testing.T) {
	d := outgoingPaymentDoc{}
	assert.Equal(t, ports.TransferStatePending, d.state())
}
