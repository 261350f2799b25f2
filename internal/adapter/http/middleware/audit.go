package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// AuditLog records successful writes and status checks once the handler
// has answered. Actions are keyed on the matched route, not the raw path.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		entry := &domain.AuditLog{
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID(c),
			IPAddress:    c.ClientIP(),
		}
		if id, ok := UserIDFrom(c); ok {
			entry.UserID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	const v1 = "/api/v1"
	route = strings.TrimPrefix(route, v1)

	switch {
	case method == http.MethodPost && route == "/auth/login":
		return domain.AuditActionLogin, "session"
	case method == http.MethodPost && route == "/wallets":
		return domain.AuditActionRegisterWallet, "wallet"
	case method == http.MethodPost && route == "/settlements":
		return domain.AuditActionSettlePayment, "transaction"
	case method == http.MethodPut && route == "/receipts/:id/pay":
		return domain.AuditActionPayReceipt, "receipt"
	case method == http.MethodGet && route == "/transactions/:id/status":
		return domain.AuditActionCheckStatus, "transaction"
	case method == http.MethodPost && route == "/wallets/:walletId/balance-adjustments":
		return domain.AuditActionAdjustBalance, "wallet"
	case method == http.MethodPost && route == "/wallets/:walletId/deactivate":
		return domain.AuditActionDeactivateWallet, "wallet"
	}
	return "", ""
}

// SetResourceID names the resource a handler created, for routes whose path
// carries no id.
func SetResourceID(c *gin.Context, id int64) {
	c.Set(CtxResourceID, strconv.FormatInt(id, 10))
}

func resourceID(c *gin.Context) string {
	if id := c.GetString(CtxResourceID); id != "" {
		return id
	}
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Param("walletId")
}
