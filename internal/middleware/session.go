// internal/middleware/session.go
package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/i18n"
	"github.com/javajoker/dukan-admin/internal/session"
	"github.com/javajoker/dukan-admin/internal/utils"
)

// Session reads the caller's token and role from the request headers and puts
// them in the context. Requests without credentials pass with an empty
// session keyed by client address; a token that has visibly expired is
// rejected.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader(session.HeaderAuthorization))
		sess := session.New(token, strings.TrimSpace(c.GetHeader(session.HeaderRole)))
		sess.Origin = c.ClientIP()

		if err := sess.Check(time.Now()); errors.Is(err, session.ErrExpired) {
			logrus.WithField("role", sess.Role).Debug("Rejected expired session token")
			utils.UnauthorizedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyAuthTokenExpired))
			c.Abort()
			return
		}

		c.Set(utils.ContextKeySession, sess)
		c.Next()
	}
}

// SessionRequired rejects requests that carry no token.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetSessionFromContext(c).Token == "" {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// bearerToken accepts "Bearer <token>" as well as a bare token, since the
// dashboard stores the raw value.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
