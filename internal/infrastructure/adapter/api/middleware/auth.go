package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/domain/usecase/auth"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/dto"
)

// Context keys for the authenticated request state
const (
	ContextUserKey    = "currentUser"
	ContextSessionKey = "currentSession"
)

// RequireAuth middleware resolves the session cookie to a user and aborts
// with 401 when there is none. The cookie is rewritten on every authenticated
// request so the sliding expiry reaches the browser too.
func RequireAuth(authService *auth.Service, cookie SessionCookie, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.Read(c)

		user, session, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Rejected unauthenticated request", map[string]any{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		cookie.Write(c, session.Token)
		c.Set(ContextUserKey, user)
		c.Set(ContextSessionKey, session)

		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// CurrentSession returns the authenticated session set by RequireAuth
func CurrentSession(c *gin.Context) (*entity.Session, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok
}
