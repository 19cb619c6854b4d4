package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"go.uber.org/zap"
)

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// BearerSession verifies the bearer token with the identity provider and
// stores the subject in the request context.
func BearerSession(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, apperror.Unauthorized("Authorization token is required"))
			return
		}

		ctx := c.Request.Context()
		subject, err := provider.VerifyToken(ctx, token)
		if err != nil {
			if !errors.Is(err, identity.ErrInvalidToken) {
				contextutil.GetLogger(ctx, zap.L()).Error("verify token failed", zap.Error(err))
			}
			abortUnauthorized(c, apperror.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set("identity_subject", subject)
		c.Request = c.Request.WithContext(contextutil.WithSubject(ctx, subject))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
