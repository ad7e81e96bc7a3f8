package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/personal_os/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/api/health": true,
	"/metrics":    true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog.
// There are no user accounts, so the request id is the distinct id.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// "/api/expense/transactions/:id" -> "api_expense_transactions_:id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(distinctID(c), eventName, props)
	}
}

func distinctID(c *gin.Context) string {
	if id := GetRequestID(c.Request.Context()); id != "" {
		return id
	}
	return "anonymous"
}
