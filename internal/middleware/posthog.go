package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/ap_reconciliation_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// operationKey holds the dispatched operation of a multi-operation endpoint,
// such as the action of POST /accounts-payable.
const operationKey = contextKey("operation")

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// SetOperation records which operation a dispatching handler ran so that it is
// reported with the request event.
func SetOperation(c *gin.Context, operation string) {
	c.Set(string(operationKey), operation)
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/accounts-payable" -> "api_v1_accounts-payable"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if op := c.GetString(string(operationKey)); op != "" {
			props["operation"] = op
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
