package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func httpResponse(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}
}

func completedTxn() *domain.PaymentTransaction {
	ext := "https://wallet.example/outgoing-payments/op-1"
	return &domain.PaymentTransaction{
		ID:                 42,
		ReceiptID:          15,
		Amount:             10000,
		AssetCode:          "USD",
		AssetScale:         2,
		ExternalTransferID: &ext,
		Status:             domain.TransactionStatusCompleted,
		Metadata:           domain.TransactionMetadata{Stage: domain.StageCommit},
	}
}

type deliverySnapshot struct {
	attempt int
	status  domain.WebhookStatus
}

func TestWebhookService_NotifySettlement_Delivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWebhookRepository(ctrl)
	sig := NewHMACSignatureService()

	bodies := make(chan []byte, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			b, _ := io.ReadAll(req.Body)
			bodies <- b
			return httpResponse(http.StatusOK), nil
		},
	}

	svc := NewWebhookService(repo, sig, httpClient,
		WebhookConfig{URL: "https://hooks.example.com/settlements", Secret: "whsec"}, newTestLogger())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.WebhookDelivery) error {
			assert.Equal(t, int64(42), d.TransactionID)
			assert.Equal(t, domain.EventSettlementCompleted, d.Event)
			assert.Equal(t, domain.WebhookStatusPending, d.Status)
			return nil
		})
	updated := make(chan deliverySnapshot, 1)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.WebhookDelivery) error {
			updated <- deliverySnapshot{attempt: d.Attempt, status: d.Status}
			return nil
		})

	require.NoError(t, svc.NotifySettlement(context.Background(), completedTxn()))

	select {
	case b := <-bodies:
		var payload WebhookPayload
		require.NoError(t, json.Unmarshal(b, &payload))
		assert.Equal(t, domain.EventSettlementCompleted, payload.Event)
		assert.True(t, sig.Verify("whsec", string(payload.Data), payload.Signature))

		var data SettlementEventData
		require.NoError(t, json.Unmarshal(payload.Data, &data))
		assert.Equal(t, int64(15), data.ReceiptID)
		assert.Equal(t, domain.TransactionStatusCompleted, data.Status)
		assert.Equal(t, "https://wallet.example/outgoing-payments/op-1", data.ExternalTransferID)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook delivery timed out")
	}

	select {
	case snap := <-updated:
		assert.Equal(t, 1, snap.attempt)
		assert.Equal(t, domain.WebhookStatusDelivered, snap.status)
	case <-time.After(2 * time.Second):
		t.Fatal("delivery not updated")
	}
}

func TestWebhookService_NotifySettlement_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	svc := NewWebhookService(mocks.NewMockWebhookRepository(ctrl), NewHMACSignatureService(), httpClient, WebhookConfig{}, newTestLogger())

	assert.NoError(t, svc.NotifySettlement(context.Background(), completedTxn()))
}

func TestWebhookService_NotifySettlement_RetriesThenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWebhookRepository(ctrl)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return httpResponse(http.StatusServiceUnavailable), nil
		},
	}
	svc := NewWebhookService(repo, NewHMACSignatureService(), httpClient,
		WebhookConfig{URL: "https://hooks.example.com/settlements", Secret: "whsec"}, newTestLogger())
	svc.(*webhookService).retries = []time.Duration{time.Millisecond}

	txn := completedTxn()
	txn.Status = domain.TransactionStatusFailed
	txn.Metadata.Failure = &domain.StageFailure{Stage: domain.StageQuote, Code: domain.CodeQuoteFailed}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.WebhookDelivery) error {
			assert.Equal(t, domain.EventSettlementFailed, d.Event)
			assert.Contains(t, d.Payload, `"error_code":"QuoteFailed"`)
			return nil
		})
	updates := make(chan deliverySnapshot, 2)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, d *domain.WebhookDelivery) error {
			updates <- deliverySnapshot{attempt: d.Attempt, status: d.Status}
			return nil
		})

	require.NoError(t, svc.NotifySettlement(context.Background(), txn))

	var got []deliverySnapshot
	for len(got) < 2 {
		select {
		case snap := <-updates:
			got = append(got, snap)
		case <-time.After(2 * time.Second):
			t.Fatal("retries not recorded")
		}
	}
	assert.Equal(t, deliverySnapshot{attempt: 1, status: domain.WebhookStatusPending}, got[0])
	assert.Equal(t, deliverySnapshot{attempt: 2, status: domain.WebhookStatusFailed}, got[1])
}

func TestWebhookService_NotifySettlement_RecordFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWebhookRepository(ctrl)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	svc := NewWebhookService(repo, NewHMACSignatureService(), httpClient,
		WebhookConfig{URL: "https://hooks.example.com/settlements"}, newTestLogger())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.Error(t, svc.NotifySettlement(context.Background(), completedTxn()))
}
