package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// webhookRetryIntervals are the waits between delivery attempts.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

const webhookAttemptTimeout = 10 * time.Second

// WebhookPayload is the JSON body POSTed to the subscriber.
type WebhookPayload struct {
	Event     domain.WebhookEvent `json:"event"`
	Data      json.RawMessage     `json:"data"`
	Signature string              `json:"signature"` // HMAC-SHA256 over Data
}

// SettlementEventData describes a settlement outcome.
type SettlementEventData struct {
	TransactionID      int64                    `json:"transaction_id"`
	ReceiptID          int64                    `json:"receipt_id"`
	Status             domain.TransactionStatus `json:"status"`
	Amount             int64                    `json:"amount"`
	AssetCode          string                   `json:"asset_code"`
	AssetScale         int                      `json:"asset_scale"`
	ExternalTransferID string                   `json:"external_transfer_id,omitempty"`
	Stage              domain.Stage             `json:"stage"`
	ErrorCode          domain.ErrorCode         `json:"error_code,omitempty"`
	Timestamp          int64                    `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookConfig holds the subscriber endpoint. An empty URL disables delivery.
type WebhookConfig struct {
	URL    string
	Secret string
}

type webhookService struct {
	repo       ports.WebhookRepository
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	cfg        WebhookConfig
	retries    []time.Duration
	log        zerolog.Logger
}

// NewWebhookService creates a new webhook service.
func NewWebhookService(
	repo ports.WebhookRepository,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	cfg WebhookConfig,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		repo:       repo,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		cfg:        cfg,
		retries:    webhookRetryIntervals,
		log:        log,
	}
}

// NotifySettlement persists a delivery record and sends it in the
// background with retries.
func (s *webhookService) NotifySettlement(ctx context.Context, txn *domain.PaymentTransaction) error {
	if s.cfg.URL == "" {
		return nil
	}

	data := SettlementEventData{
		TransactionID: txn.ID,
		ReceiptID:     txn.ReceiptID,
		Status:        txn.Status,
		Amount:        txn.Amount,
		AssetCode:     txn.AssetCode,
		AssetScale:    txn.AssetScale,
		Stage:         txn.Metadata.Stage,
		Timestamp:     time.Now().Unix(),
	}
	if txn.ExternalTransferID != nil {
		data.ExternalTransferID = *txn.ExternalTransferID
	}
	if txn.Metadata.Failure != nil {
		data.ErrorCode = txn.Metadata.Failure.Code
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal webhook data: %w", err)
	}
	body, err := json.Marshal(WebhookPayload{
		Event:     domain.EventFor(txn.Status),
		Data:      dataBytes,
		Signature: s.sigSvc.Sign(s.cfg.Secret, string(dataBytes)),
	})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	now := time.Now().UTC()
	delivery := &domain.WebhookDelivery{
		ID:            uuid.New(),
		TransactionID: txn.ID,
		Event:         domain.EventFor(txn.Status),
		URL:           s.cfg.URL,
		Payload:       string(body),
		Status:        domain.WebhookStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, delivery); err != nil {
		s.log.Error().Err(err).Int64("tx_id", txn.ID).Msg("webhook: failed to record delivery")
		return err
	}

	go s.deliverWithRetries(context.WithoutCancel(ctx), delivery, body)
	return nil
}

func (s *webhookService) deliverWithRetries(ctx context.Context, d *domain.WebhookDelivery, body []byte) {
	for attempt := 1; attempt <= len(s.retries)+1; attempt++ {
		if attempt > 1 {
			time.Sleep(s.retries[attempt-2])
		}

		status, err := s.post(ctx, d.URL, body)
		d.Attempt = attempt
		d.UpdatedAt = time.Now().UTC()
		if status != 0 {
			d.HTTPStatus = &status
		}

		if err == nil {
			d.Status = domain.WebhookStatusDelivered
			d.LastError = nil
			s.save(ctx, d)
			s.log.Info().Int64("tx_id", d.TransactionID).Int("attempt", attempt).Int("status", status).Msg("webhook: delivered successfully")
			return
		}

		msg := err.Error()
		d.LastError = &msg
		if attempt == len(s.retries)+1 {
			d.Status = domain.WebhookStatusFailed
		}
		s.save(ctx, d)
		s.log.Warn().Err(err).Int64("tx_id", d.TransactionID).Int("attempt", attempt).Msg("webhook: delivery failed")
	}

	s.log.Error().Int64("tx_id", d.TransactionID).Msg("webhook: all retry attempts exhausted")
}

func (s *webhookService) post(ctx context.Context, url string, body []byte) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, webhookAttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("non-2xx response: %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func (s *webhookService) save(ctx context.Context, d *domain.WebhookDelivery) {
	if err := s.repo.Update(ctx, d); err != nil {
		s.log.Warn().Err(err).Str("delivery_id", d.ID.String()).Msg("webhook: failed to update delivery")
	}
}
