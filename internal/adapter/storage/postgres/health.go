package postgres

import (
	"context"
	"fmt"
	"time"
)

const pingTimeout = 2 * time.Second

// HealthCheck reports whether the settlement tables are reachable.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a new PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping touches payment_transactions so a database without the schema
// counts as unhealthy.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if _, err := h.pool.Exec(ctx, "SELECT 1 FROM payment_transactions LIMIT 1"); err != nil {
		return fmt.Errorf("postgres health: %w", err)
	}
	return nil
}

// Name returns the dependency name reported by /health.
func (h *HealthCheck) Name() string { return "postgresql" }
