package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "condo-settlement/settlement"

	defaultGatewayTimeout = 10 * time.Second
)

// SettlementConfig tunes the orchestrator.
type SettlementConfig struct {
	AssetCode      string
	AssetScale     int
	GatewayTimeout time.Duration // per gateway call; 0 means defaultGatewayTimeout
	LockTTL        time.Duration
}

// SettlementDeps groups the collaborators of SettlementService. Lock and
// Webhooks are optional.
type SettlementDeps struct {
	Wallets     ports.WalletRegistry
	WalletRepo  ports.WalletRepository
	TxRepo      ports.TransactionRepository
	ReceiptRepo ports.ReceiptRepository
	Gateway     ports.PaymentGateway
	Lock        ports.SettlementLock
	Transactor  ports.DBTransactor
	EncSvc      ports.EncryptionService
	Webhooks    ports.WebhookService
}

// SettlementService implements ports.SettlementService. A settlement moves
// through intent, reserve, quote, execute and commit; the first failing
// stage ends the attempt and nothing already done on the network is undone.
type SettlementService struct {
	SettlementDeps
	cfg SettlementConfig
	log zerolog.Logger
	now func() time.Time

	tracer        trace.Tracer
	attempts      metric.Int64Counter
	stageDuration metric.Float64Histogram
}

// NewSettlementService creates a SettlementService and registers its metrics
// on the global meter provider.
func NewSettlementService(deps SettlementDeps, cfg SettlementConfig, log zerolog.Logger) *SettlementService {
	meter := otel.Meter(instrumentationName)
	attempts, err := meter.Int64Counter("settlement.attempts",
		metric.WithDescription("Settlement attempts by outcome and error code"))
	if err != nil {
		otel.Handle(err)
	}
	stageDuration, err := meter.Float64Histogram("settlement.stage.duration",
		metric.WithDescription("Duration of settlement stages"),
		metric.WithUnit("s"))
	if err != nil {
		otel.Handle(err)
	}

	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}

	return &SettlementService{
		SettlementDeps: deps,
		cfg:            cfg,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
		tracer:         otel.Tracer(instrumentationName),
		attempts:       attempts,
		stageDuration:  stageDuration,
	}
}

// SettlePayment pays req.Amount from the payer's wallet to the payee's
// wallet against a receipt. The payee must be the treasurer and the amount
// must equal the receipt amount. Every failure is reported in the result.
func (s *SettlementService) SettlePayment(ctx context.Context, req ports.SettleRequest) *domain.SettlementResult {
	ctx, span := s.tracer.Start(ctx, "settlement.settle_payment", trace.WithAttributes(
		attribute.Int64("receipt.id", req.ReceiptID),
		attribute.Int64("payer.user_id", req.PayerUserID),
		attribute.Int64("payee.user_id", req.PayeeUserID),
	))
	defer span.End()

	res := s.settlePayment(ctx, req)
	s.finish(ctx, span, res)
	return res
}

func (s *SettlementService) settlePayment(ctx context.Context, req ports.SettleRequest) *domain.SettlementResult {
	if req.ReceiptID <= 0 || req.PayerUserID <= 0 || req.PayeeUserID <= 0 {
		return domain.Failed(domain.StageIntent, domain.CodeInvalidRequest, "receiptId, payer and payee are required")
	}
	if req.Amount <= 0 {
		return domain.Failed(domain.StageIntent, domain.CodeInvalidRequest, "amount must be positive")
	}

	payer, res := s.walletFor(ctx, req.PayerUserID, domain.CodeSenderWalletNotFound)
	if res != nil {
		return res
	}
	payee, res := s.walletFor(ctx, req.PayeeUserID, domain.CodeReceiverWalletNotFound)
	if res != nil {
		return res
	}

	receipt, res := s.payableReceipt(ctx, req.ReceiptID)
	if res != nil {
		return res
	}
	if req.Amount != receipt.Amount {
		return domain.Failed(domain.StageIntent, domain.CodeInvalidRequest, fmt.Sprintf(
			"amount %s does not match receipt %d amount %s",
			domain.FormatAmount(req.Amount, s.cfg.AssetScale), receipt.ID, domain.FormatAmount(receipt.Amount, s.cfg.AssetScale)))
	}

	// Receipts are only ever settled into the treasurer's wallet.
	treasurer, err := s.Wallets.GetTreasurerWallet(ctx)
	if err != nil {
		return treasurerFailure(err)
	}
	if payee.ID != treasurer.ID {
		return domain.Failed(domain.StageIntent, domain.CodeInvalidRequest, "payee must be the treasurer")
	}
	return s.settle(ctx, req, payer, payee)
}

// PayReceipt settles a receipt's full amount to the treasurer.
func (s *SettlementService) PayReceipt(ctx context.Context, req ports.PayReceiptRequest) *domain.SettlementResult {
	ctx, span := s.tracer.Start(ctx, "settlement.pay_receipt", trace.WithAttributes(
		attribute.Int64("receipt.id", req.ReceiptID),
		attribute.Int64("payer.user_id", req.PayerUserID),
	))
	defer span.End()

	res := s.payReceipt(ctx, req)
	s.finish(ctx, span, res)
	return res
}

func (s *SettlementService) payReceipt(ctx context.Context, req ports.PayReceiptRequest) *domain.SettlementResult {
	if req.ReceiptID <= 0 || req.PayerUserID <= 0 {
		return domain.Failed(domain.StageIntent, domain.CodeInvalidRequest, "receiptId and payer are required")
	}

	receipt, res := s.payableReceipt(ctx, req.ReceiptID)
	if res != nil {
		return res
	}

	payer, res := s.walletFor(ctx, req.PayerUserID, domain.CodeSenderWalletNotFound)
	if res != nil {
		return res
	}
	if req.WalletAddress != nil && *req.WalletAddress != payer.WalletAddress {
		return domain.Failed(domain.StageIntent, domain.CodeWalletAddressMismatch,
			"wallet address does not match the payer's registered wallet")
	}

	treasurer, err := s.Wallets.GetTreasurerWallet(ctx)
	if err != nil {
		return treasurerFailure(err)
	}

	return s.settle(ctx, ports.SettleRequest{
		ReceiptID:   receipt.ID,
		PayerUserID: req.PayerUserID,
		PayeeUserID: treasurer.UserID,
		Amount:      receipt.Amount,
		Description: receipt.PaymentDescription(),
	}, payer, treasurer)
}

func treasurerFailure(err error) *domain.SettlementResult {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperror.ErrTreasurerWalletMissing().Code:
			return domain.Failed(domain.StageIntent, domain.CodeTreasurerWalletNotFound, appErr.Message)
		case apperror.ErrTreasurerNotConfigured().Code, apperror.ErrTreasurerAmbiguous().Code:
			return domain.Failed(domain.StageIntent, domain.CodeTreasurerNotConfigured, appErr.Message)
		}
	}
	return domain.Failed(domain.StageIntent, domain.CodeInternal, err.Error())
}

func (s *SettlementService) walletFor(ctx context.Context, userID int64, missing domain.ErrorCode) (*domain.Wallet, *domain.SettlementResult) {
	wallet, err := s.Wallets.GetWalletForUser(ctx, userID)
	if err != nil {
		return nil, domain.Failed(domain.StageIntent, domain.CodeInternal, err.Error())
	}
	if wallet == nil {
		return nil, domain.Failed(domain.StageIntent, missing, fmt.Sprintf("user %d has no active wallet", userID))
	}
	return wallet, nil
}

func (s *SettlementService) payableReceipt(ctx context.Context, receiptID int64) (*domain.Receipt, *domain.SettlementResult) {
	receipt, err := s.ReceiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, domain.Failed(domain.StageIntent, domain.CodeInternal, err.Error())
	}
	if receipt == nil {
		return nil, domain.Failed(domain.StageIntent, domain.CodeReceiptNotFound, fmt.Sprintf("receipt %d not found", receiptID))
	}
	if receipt.IsPaid() {
		return nil, domain.Failed(domain.StageIntent, domain.CodeReceiptAlreadyPaid, fmt.Sprintf("receipt %d is already paid", receiptID))
	}
	return receipt, nil
}

// settle runs the network protocol once both wallets are resolved.
func (s *SettlementService) settle(ctx context.Context, req ports.SettleRequest, payer, payee *domain.Wallet) *domain.SettlementResult {
	if payer.ID == payee.ID {
		return domain.Failed(domain.StageIntent, domain.CodeInvalidRequest, "payer and payee wallets must differ")
	}

	assetCode, assetScale := req.AssetCode, req.AssetScale
	if assetCode == "" {
		assetCode, assetScale = s.cfg.AssetCode, s.cfg.AssetScale
	}

	log := s.log.With().
		Int64("receipt_id", req.ReceiptID).
		Int64("sender_wallet_id", payer.ID).
		Int64("receiver_wallet_id", payee.ID).
		Int64("amount", req.Amount).
		Logger()

	if s.Lock != nil {
		token, err := s.Lock.Acquire(ctx, req.ReceiptID, s.cfg.LockTTL)
		switch {
		case errors.Is(err, domain.ErrLockHeld):
			return domain.Failed(domain.StageIntent, domain.CodeSettlementInProgress, "another settlement for this receipt is in progress")
		case err != nil:
			log.Warn().Err(err).Msg("settlement lease unavailable, relying on the database guard")
		default:
			defer func() {
				if err := s.Lock.Release(context.WithoutCancel(ctx), req.ReceiptID, token); err != nil {
					log.Warn().Err(err).Msg("failed to release settlement lease")
				}
			}()
		}
	}

	grant, err := s.grantToken(payer)
	if err != nil {
		return domain.Failed(domain.StageIntent, domain.CodeInternal, "cannot unseal the payer's grant token")
	}

	// Writes from here on must land even if the caller goes away.
	wctx := context.WithoutCancel(ctx)

	txn := &domain.PaymentTransaction{
		ReceiptID:        req.ReceiptID,
		SenderWalletID:   payer.ID,
		ReceiverWalletID: payee.ID,
		Amount:           req.Amount,
		AssetCode:        assetCode,
		AssetScale:       assetScale,
		PaymentPointer:   payee.WalletAddress,
		Status:           domain.TransactionStatusPending,
		Metadata:         domain.TransactionMetadata{Stage: domain.StageIntent},
		Description:      req.Description,
	}
	if err := s.TxRepo.Create(wctx, txn); err != nil {
		if errors.Is(err, domain.ErrSettlementInFlight) {
			return domain.Failed(domain.StageIntent, domain.CodeSettlementInProgress, "receipt already has a pending or completed transaction")
		}
		log.Error().Err(err).Msg("failed to record settlement intent")
		return domain.Failed(domain.StageIntent, domain.CodeInternal, "failed to record settlement intent")
	}
	log = log.With().Int64("tx_id", txn.ID).Logger()
	log.Info().Msg("settlement started")

	var reservation *ports.IncomingReservation
	err = s.stage(ctx, domain.StageReserve, func(ctx context.Context) (err error) {
		reservation, err = s.Gateway.ReserveIncoming(ctx, ports.ReserveRequest{
			ReceiverAddress: payee.WalletAddress,
			Amount:          req.Amount,
			AssetCode:       assetCode,
			AssetScale:      assetScale,
			Description:     req.Description,
		})
		return err
	})
	if err != nil {
		return s.fail(wctx, log, txn, domain.StageReserve, domain.CodeReservationFailed, err)
	}
	txn.Metadata.Stage = domain.StageReserve
	txn.Metadata.IncomingPaymentID = reservation.ID
	s.progress(wctx, log, txn)

	var quote *ports.Quote
	err = s.stage(ctx, domain.StageQuote, func(ctx context.Context) (err error) {
		quote, err = s.Gateway.QuoteTransfer(ctx, ports.QuoteRequest{
			SenderAddress: payer.WalletAddress,
			ReservationID: reservation.ID,
			Amount:        req.Amount,
			AssetCode:     assetCode,
			AssetScale:    assetScale,
			AccessToken:   grant,
		})
		return err
	})
	if err != nil {
		return s.fail(wctx, log, txn, domain.StageQuote, domain.CodeQuoteFailed, err)
	}
	txn.Metadata.Stage = domain.StageQuote
	txn.Metadata.QuoteID = quote.ID
	s.progress(wctx, log, txn)

	var transfer *ports.OutgoingTransfer
	err = s.stage(ctx, domain.StageExecute, func(ctx context.Context) (err error) {
		transfer, err = s.Gateway.ExecuteTransfer(ctx, ports.ExecuteRequest{
			SenderAddress: payer.WalletAddress,
			QuoteID:       quote.ID,
			AccessToken:   grant,
		})
		if err == nil && transfer.Failed {
			err = fmt.Errorf("outgoing payment %s reported %s", transfer.ID, transfer.State)
		}
		return err
	})
	if transfer != nil {
		txn.ExternalTransferID = &transfer.ID
	}
	if err != nil {
		return s.fail(wctx, log, txn, domain.StageExecute, domain.CodeTransferFailed, err)
	}
	txn.Metadata.Stage = domain.StageExecute
	s.progress(wctx, log, txn)

	err = s.stage(wctx, domain.StageCommit, func(ctx context.Context) error {
		return s.commit(ctx, txn)
	})
	if err != nil {
		log.Error().Err(err).Str("external_transfer_id", transfer.ID).Msg("settlement commit failed after transfer")
		return s.fail(wctx, log, txn, domain.StageCommit, domain.CodeCommitFailed, err)
	}

	log.Info().Str("external_transfer_id", transfer.ID).Msg("settlement completed")
	s.notify(wctx, log, txn)

	return &domain.SettlementResult{
		Success:            true,
		TransactionID:      &txn.ID,
		ExternalTransferID: transfer.ID,
		Stage:              domain.StageCommit,
	}
}

// stage runs one protocol step under its own span, metric and, for network
// steps, the gateway timeout.
func (s *SettlementService) stage(ctx context.Context, stage domain.Stage, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "settlement."+string(stage))
	defer span.End()

	if stage != domain.StageCommit {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.GatewayTimeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	s.stageDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("stage", string(stage)),
		attribute.Bool("ok", err == nil),
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// progress saves the furthest stage reached. Losing it only costs the
// reconciler some information, so errors are logged.
func (s *SettlementService) progress(ctx context.Context, log zerolog.Logger, txn *domain.PaymentTransaction) {
	if err := s.TxRepo.RecordProgress(ctx, txn.ID, txn.ExternalTransferID, txn.Metadata); err != nil {
		log.Warn().Err(err).Str("stage", string(txn.Metadata.Stage)).Msg("failed to record settlement progress")
	}
}

// commit completes the row and applies its effects in one database transaction.
func (s *SettlementService) commit(ctx context.Context, txn *domain.PaymentTransaction) error {
	now := s.now()
	meta := txn.Metadata
	meta.Stage = domain.StageCommit
	meta.ProcessedAt = &now
	meta.AppliedAt = &now

	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.TxRepo.Transition(ctx, dbTx, ports.StatusTransition{
		ID:                 txn.ID,
		From:               domain.TransactionStatusPending,
		To:                 domain.TransactionStatusCompleted,
		ExternalTransferID: txn.ExternalTransferID,
		Metadata:           meta,
	}); err != nil {
		return fmt.Errorf("complete transaction: %w", err)
	}
	if err := s.applyEffects(ctx, dbTx, txn, now); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	txn.Status = domain.TransactionStatusCompleted
	txn.Metadata = meta
	return nil
}

// applyEffects moves the local balances and marks the receipt paid.
func (s *SettlementService) applyEffects(ctx context.Context, dbTx pgx.Tx, txn *domain.PaymentTransaction, paidAt time.Time) error {
	if _, err := s.WalletRepo.AdjustBalance(ctx, dbTx, txn.SenderWalletID, -txn.Amount); err != nil {
		return fmt.Errorf("debit sender: %w", err)
	}
	if _, err := s.WalletRepo.AdjustBalance(ctx, dbTx, txn.ReceiverWalletID, txn.Amount); err != nil {
		return fmt.Errorf("credit receiver: %w", err)
	}
	if err := s.ReceiptRepo.MarkPaid(ctx, dbTx, txn.ReceiptID, paidAt); err != nil {
		return fmt.Errorf("mark receipt %d paid: %w", txn.ReceiptID, err)
	}
	return nil
}

// fail moves the row to failed with the stage failure attached. If the
// write is lost the row stays pending for the reconciler.
func (s *SettlementService) fail(ctx context.Context, log zerolog.Logger, txn *domain.PaymentTransaction, stage domain.Stage, code domain.ErrorCode, cause error) *domain.SettlementResult {
	meta := txn.Metadata
	meta.Failure = &domain.StageFailure{
		Stage:    stage,
		Code:     code,
		Error:    cause.Error(),
		FailedAt: s.now(),
	}

	err := s.TxRepo.Transition(ctx, nil, ports.StatusTransition{
		ID:                 txn.ID,
		From:               domain.TransactionStatusPending,
		To:                 domain.TransactionStatusFailed,
		ExternalTransferID: txn.ExternalTransferID,
		Metadata:           meta,
	})
	if err != nil {
		log.Error().Err(err).Str("stage", string(stage)).Msg("failed to record settlement failure")
	} else {
		txn.Status = domain.TransactionStatusFailed
		txn.Metadata = meta
		s.notify(ctx, log, txn)
	}

	log.Warn().Err(cause).Str("stage", string(stage)).Str("error_code", string(code)).Msg("settlement failed")

	res := domain.Failed(stage, code, cause.Error()).WithTransaction(txn.ID)
	if txn.ExternalTransferID != nil {
		res.ExternalTransferID = *txn.ExternalTransferID
	}
	return res
}

func (s *SettlementService) notify(ctx context.Context, log zerolog.Logger, txn *domain.PaymentTransaction) {
	if s.Webhooks == nil {
		return
	}
	if err := s.Webhooks.NotifySettlement(ctx, txn); err != nil {
		log.Warn().Err(err).Msg("failed to enqueue settlement webhook")
	}
}

func (s *SettlementService) finish(ctx context.Context, span trace.Span, res *domain.SettlementResult) {
	outcome := "completed"
	if !res.Success {
		outcome = "failed"
		span.SetStatus(codes.Error, string(res.ErrorCode))
	}
	if res.TransactionID != nil {
		span.SetAttributes(attribute.Int64("transaction.id", *res.TransactionID))
	}
	span.SetAttributes(attribute.String("settlement.stage", string(res.Stage)))
	s.attempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("error", string(res.ErrorCode)),
	))
}

func (s *SettlementService) grantToken(w *domain.Wallet) (string, error) {
	if w.AccessTokenEnc == nil || *w.AccessTokenEnc == "" {
		return "", nil
	}
	return s.EncSvc.Decrypt(*w.AccessTokenEnc)
}

// CheckStatus reconciles one transaction with the network. Only COMPLETED
// counts as completed; any other state is treated as failed. A row that
// turns completed without its effects applied gets them now.
func (s *SettlementService) CheckStatus(ctx context.Context, transactionID int64) (*ports.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "settlement.check_status", trace.WithAttributes(
		attribute.Int64("transaction.id", transactionID),
	))
	defer span.End()

	txn, err := s.TxRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	if txn.ExternalTransferID == nil || *txn.ExternalTransferID == "" {
		return nil, apperror.ErrNoExternalTransfer()
	}

	sender, err := s.WalletRepo.GetByID(ctx, txn.SenderWalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find sender wallet: %w", err))
	}
	if sender == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	grant, err := s.grantToken(sender)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}

	var status *ports.TransferStatus
	err = s.stage(ctx, "status", func(ctx context.Context) (err error) {
		status, err = s.Gateway.GetTransferStatus(ctx, *txn.ExternalTransferID, sender.WalletAddress, grant)
		return err
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, apperror.ErrGatewayUnavailable(err)
	}

	observed := domain.TransactionStatusFailed
	if status.State == ports.TransferStateCompleted {
		observed = domain.TransactionStatusCompleted
	}

	check := &ports.StatusCheck{
		Success:      true,
		LocalStatus:  txn.Status,
		GatewayState: status.State,
		Transaction:  txn,
	}
	if observed == txn.Status {
		return check, nil
	}

	log := s.log.With().Int64("tx_id", txn.ID).Int64("receipt_id", txn.ReceiptID).Logger()

	now := s.now()
	meta := txn.Metadata
	meta.Reconciliation = &domain.Reconciliation{
		ObservedState:  status.State,
		PreviousStatus: txn.Status,
		Diverged:       true,
		CheckedAt:      now,
	}
	apply := observed == domain.TransactionStatusCompleted && !txn.Applied()
	if apply {
		meta.Stage = domain.StageCommit
		meta.AppliedAt = &now
		if meta.ProcessedAt == nil {
			meta.ProcessedAt = &now
		}
	}

	if err := s.reconcile(ctx, txn, observed, meta, apply, now); err != nil {
		switch {
		case errors.Is(err, domain.ErrStaleTransition), errors.Is(err, domain.ErrSettlementInFlight):
			return nil, apperror.ErrTransitionConflict(err)
		}
		return nil, apperror.InternalError(err)
	}

	log.Warn().
		Str("previous_status", string(txn.Status)).
		Str("status", string(observed)).
		Str("gateway_state", status.State).
		Bool("applied", apply).
		Msg("transaction reconciled with the payment network")

	txn.Status = observed
	txn.Metadata = meta
	check.LocalStatus = observed
	check.Changed = true
	s.notify(context.WithoutCancel(ctx), log, txn)
	return check, nil
}

func (s *SettlementService) reconcile(ctx context.Context, txn *domain.PaymentTransaction, to domain.TransactionStatus, meta domain.TransactionMetadata, apply bool, now time.Time) error {
	dbTx, err := s.Transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.TxRepo.Transition(ctx, dbTx, ports.StatusTransition{
		ID:       txn.ID,
		From:     txn.Status,
		To:       to,
		Metadata: meta,
	}); err != nil {
		return err
	}
	if apply {
		if err := s.applyEffects(ctx, dbTx, txn, now); err != nil {
			return err
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
