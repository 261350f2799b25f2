package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"condo-settlement/config"
	"condo-settlement/internal/adapter/gateway/openpayments"
	"condo-settlement/internal/adapter/gateway/stub"
	httpHandler "condo-settlement/internal/adapter/http/handler"
	pgStorage "condo-settlement/internal/adapter/storage/postgres"
	redisStorage "condo-settlement/internal/adapter/storage/redis"
	"condo-settlement/internal/core/ports"
	"condo-settlement/internal/service"
	"condo-settlement/pkg/logger"
	"condo-settlement/pkg/telemetry"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, cfg.Telemetry.ServiceName)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("gateway", cfg.Gateway.Driver).
		Msg("Starting condo settlement service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.MigrateOnStart {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	receiptRepo := pgStorage.NewReceiptRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	gateway, err := newGateway(cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize payment gateway")
	}

	// Initialize business services
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc)
	walletSvc := service.NewWalletService(
		userRepo,
		walletRepo,
		gateway,
		redisStorage.NewAddressCache(rdb),
		encSvc,
		cfg.Gateway.AddressCacheTTL,
		log,
	)
	webhookSvc := service.NewWebhookService(
		webhookRepo,
		sigSvc,
		&http.Client{Timeout: 10 * time.Second, Transport: otelhttp.NewTransport(http.DefaultTransport)},
		service.WebhookConfig{URL: cfg.Webhook.URL, Secret: cfg.Webhook.Secret},
		log,
	)
	settlementSvc := service.NewSettlementService(service.SettlementDeps{
		Wallets:     walletSvc,
		WalletRepo:  walletRepo,
		TxRepo:      txRepo,
		ReceiptRepo: receiptRepo,
		Gateway:     gateway,
		Lock:        redisStorage.NewSettlementLock(rdb),
		Transactor:  transactor,
		EncSvc:      encSvc,
		Webhooks:    webhookSvc,
	}, service.SettlementConfig{
		AssetCode:      cfg.Gateway.AssetCode,
		AssetScale:     cfg.Gateway.AssetScale,
		GatewayTimeout: cfg.Settlement.GatewayTimeout,
		LockTTL:        cfg.Settlement.LockTTL,
	}, log)
	ledgerSvc := service.NewLedgerService(txRepo, walletRepo)
	auditSvc := service.NewAuditService(auditRepo, log)

	reconciler := service.NewReconciler(txRepo, settlementSvc, webhookSvc, service.ReconcilerConfig{
		Interval:   cfg.Settlement.ReconcileInterval,
		StaleAfter: cfg.Settlement.StaleAfter,
		Batch:      cfg.Settlement.ReconcileBatch,
	}, log)
	reconcilerDone := make(chan struct{})
	go func() {
		defer close(reconcilerDone)
		reconciler.Run(ctx)
	}()

	serviceName := ""
	if cfg.Telemetry.Enabled {
		serviceName = cfg.Telemetry.ServiceName
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		SettlementSvc:  settlementSvc,
		LedgerSvc:      ledgerSvc,
		Wallets:        walletSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		ServiceName:    serviceName,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	<-reconcilerDone
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Telemetry shutdown failed")
	}

	log.Info().Msg("Server exited")
}

func newGateway(cfg config.GatewayConfig, log zerolog.Logger) (ports.PaymentGateway, error) {
	switch cfg.Driver {
	case "", "openpayments":
		return openpayments.New(openpayments.Config{AccessToken: cfg.AccessToken, Timeout: cfg.Timeout}, log), nil
	case "stub":
		log.Warn().Msg("Using in-memory stub payment network")
		return stub.New(stub.WithAnyAddress(cfg.AssetCode, cfg.AssetScale)), nil
	default:
		return nil, fmt.Errorf("unknown gateway driver %q", cfg.Driver)
	}
}
