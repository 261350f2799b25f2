package service

import (
	"context"
	"errors"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// ReconcilerConfig controls the background sweep over stale pending rows.
type ReconcilerConfig struct {
	Interval   time.Duration // 0 disables Run
	StaleAfter time.Duration
	Batch      int
}

// Reconciler finishes settlements a crashed or cut-off attempt left pending.
type Reconciler struct {
	txRepo     ports.TransactionRepository
	settlement ports.SettlementService
	webhooks   ports.WebhookService
	cfg        ReconcilerConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewReconciler creates a Reconciler. webhooks may be nil.
func NewReconciler(txRepo ports.TransactionRepository, settlement ports.SettlementService, webhooks ports.WebhookService, cfg ReconcilerConfig, log zerolog.Logger) *Reconciler {
	if cfg.Batch <= 0 {
		cfg.Batch = 50
	}
	return &Reconciler{
		txRepo:     txRepo,
		settlement: settlement,
		webhooks:   webhooks,
		cfg:        cfg,
		log:        log.With().Str("component", "reconciler").Logger(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps every Interval until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	if r.cfg.Interval <= 0 {
		r.log.Info().Msg("Reconciler disabled")
		return
	}
	r.log.Info().Dur("interval", r.cfg.Interval).Dur("stale_after", r.cfg.StaleAfter).Msg("Reconciler started")

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("Reconciler stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				r.log.Error().Err(err).Msg("Reconcile sweep failed")
			}
		}
	}
}

// SweepResult counts what one sweep did.
type SweepResult struct {
	Checked   int
	Changed   int
	Abandoned int
	Errors    int
}

// RunOnce handles one batch of pending rows older than StaleAfter. Rows
// with an external transfer are checked against the network; rows without
// one never reached execute and are failed so the receipt can be retried.
func (r *Reconciler) RunOnce(ctx context.Context) (SweepResult, error) {
	var res SweepResult

	stale, err := r.txRepo.ListStalePending(ctx, r.now().Add(-r.cfg.StaleAfter), r.cfg.Batch)
	if err != nil {
		return res, err
	}

	for i := range stale {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		txn := &stale[i]
		log := r.log.With().Int64("tx_id", txn.ID).Int64("receipt_id", txn.ReceiptID).Logger()

		if txn.ExternalTransferID != nil && *txn.ExternalTransferID != "" {
			res.Checked++
			check, err := r.settlement.CheckStatus(ctx, txn.ID)
			if err != nil {
				res.Errors++
				log.Warn().Err(err).Msg("Status check failed")
				continue
			}
			if check.Changed {
				res.Changed++
			}
			continue
		}

		if err := r.abandon(ctx, txn); err != nil {
			if !errors.Is(err, domain.ErrStaleTransition) {
				res.Errors++
				log.Warn().Err(err).Msg("Failed to abandon stale transaction")
			}
			continue
		}
		res.Abandoned++
		log.Warn().Str("stage", string(txn.Metadata.Stage)).Msg("Abandoned stale transaction without external transfer")
	}

	if len(stale) > 0 {
		r.log.Info().
			Int("stale", len(stale)).
			Int("checked", res.Checked).
			Int("changed", res.Changed).
			Int("abandoned", res.Abandoned).
			Int("errors", res.Errors).
			Msg("Reconcile sweep done")
	}
	return res, nil
}

func (r *Reconciler) abandon(ctx context.Context, txn *domain.PaymentTransaction) error {
	meta := txn.Metadata
	meta.Failure = &domain.StageFailure{
		Stage:    txn.Metadata.Stage,
		Code:     domain.CodeAbandoned,
		Error:    "no external transfer recorded before the attempt stopped",
		FailedAt: r.now(),
	}
	if err := r.txRepo.Transition(ctx, nil, ports.StatusTransition{
		ID:       txn.ID,
		From:     domain.TransactionStatusPending,
		To:       domain.TransactionStatusFailed,
		Metadata: meta,
	}); err != nil {
		return err
	}

	txn.Status = domain.TransactionStatusFailed
	txn.Metadata = meta
	if r.webhooks != nil {
		if err := r.webhooks.NotifySettlement(ctx, txn); err != nil {
			r.log.Warn().Err(err).Int64("tx_id", txn.ID).Msg("Failed to enqueue settlement webhook")
		}
	}
	return nil
}
