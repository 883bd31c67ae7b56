package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie writes and clears the HTTP-only session cookie that carries
// the opaque session token
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Read returns the session token from the request, or "" when absent
func (sc SessionCookie) Read(c *gin.Context) string {
	token, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return token
}

// Write sets the session cookie on the response
func (sc SessionCookie) Write(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, int(sc.TTL.Seconds()), "/", "", sc.Secure, true)
}

// Clear expires the session cookie on the response
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}
