package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_token"

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetSession stores the session token. With remember the cookie persists
// until the token expiry; otherwise it is a session-only cookie dropped when
// the browser closes.
func (m *CookieManager) SetSession(c *gin.Context, token string, exp time.Time, remember bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := 0
	if remember {
		maxAge = maxAgeFrom(exp)
	}
	c.SetCookie(SessionCookieName, token, maxAge, "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
