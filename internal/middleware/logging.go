// internal/middleware/logging.go
package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/utils"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags every request with an id and logs it once it finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(utils.ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		fields := logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration.Milliseconds(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := logrus.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Request processed")
		case c.Writer.Status() >= 400:
			entry.Warn("Request processed")
		default:
			entry.Info("Request processed")
		}
	}
}

// AuditLog records who changed which resource. Reads and health checks are
// skipped.
func AuditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		c.Next()

		sess := utils.GetSessionFromContext(c)
		requestID, _ := c.Get(utils.ContextKeyRequestID)
		logrus.WithFields(logrus.Fields{
			"request_id":    requestID,
			"action":        c.Request.Method + " " + c.Request.URL.Path,
			"resource_type": extractResourceType(c.Request.URL.Path),
			"resource_id":   extractResourceID(c.Request.URL.Path),
			"role":          sess.Role,
			"session":       sess.Key(),
			"status":        c.Writer.Status(),
		}).Info("Audit")
	}
}

func extractResourceType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "v1" {
		return parts[1]
	}
	if len(parts) >= 1 && parts[0] != "" {
		return parts[0]
	}
	return "unknown"
}

// extractResourceID returns the segment following the resource type unless it
// names a sub-resource such as "form".
func extractResourceID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "v1" {
		return ""
	}
	id := parts[2]
	if parts[1] == "posters" && len(parts) >= 4 {
		id = parts[3]
	}
	if id == "form" {
		return ""
	}
	return id
}
