package handler

import (
	"condo-settlement/internal/adapter/http/middleware"
	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	SettlementSvc  ports.SettlementService
	LedgerSvc      ports.LedgerService
	Wallets        ports.WalletRegistry
	TokenSvc       ports.TokenService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	ServiceName    string             // empty = no request tracing
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	if deps.ServiceName != "" {
		r.Use(otelgin.Middleware(deps.ServiceName))
	}
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.GET("/me", jwtAuth, rl("read"), authHandler.Me)
	}

	settlementHandler := NewSettlementHandler(deps.SettlementSvc, deps.LedgerSvc, deps.Wallets)
	v1.POST("/settlements", jwtAuth, rl("settlements"), settlementHandler.Settle)
	v1.PUT("/receipts/:id/pay", jwtAuth, rl("settlements"), settlementHandler.PayReceipt)

	walletHandler := NewWalletHandler(deps.Wallets, deps.LedgerSvc)
	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("", rl("wallets"), walletHandler.Register)
		wallets.POST("/validate", rl("wallets"), walletHandler.Validate)
		wallets.GET("/treasurer", rl("read"), walletHandler.Treasurer)
		wallets.GET("/user/:userId", rl("read"), walletHandler.ForUser)
		wallets.GET("/:walletId/transactions", rl("read"), walletHandler.Transactions)
		wallets.GET("/:walletId/summary", rl("read"), walletHandler.Summary)
		wallets.POST("/:walletId/balance-adjustments", adminOnly, rl("wallets"), walletHandler.AdjustBalance)
		wallets.POST("/:walletId/deactivate", adminOnly, rl("wallets"), walletHandler.Deactivate)
	}

	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("", rl("read"), settlementHandler.ListTransactions)
		transactions.GET("/:id", rl("read"), settlementHandler.GetTransaction)
		transactions.GET("/:id/status", rl("settlements"), settlementHandler.CheckStatus)
	}

	return r
}
