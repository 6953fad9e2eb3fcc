package auth

import (
	"net/http"
	"time"

	"github.com/vkazmin/accountd/internal/common"
)

// CookieDirective describes how the session cookie must be set. HttpOnly is
// unconditional: the token must never be reachable from script. Path is
// root-scoped so the cookie rides along on every request.
type CookieDirective struct {
	HTTPOnly bool
	Path     string
	MaxAge   int
}

// NewCookieDirective derives the cookie policy from the token TTL;
// MaxAge equals the TTL in whole seconds.
func NewCookieDirective(tokenTTL time.Duration) CookieDirective {
	return CookieDirective{
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
	}
}

// Cookie builds the Set-Cookie value carrying token under the directive.
func (d CookieDirective) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    token,
		Path:     d.Path,
		HttpOnly: d.HTTPOnly,
		MaxAge:   d.MaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie builds a Set-Cookie value that removes the session cookie.
func (d CookieDirective) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    "",
		Path:     d.Path,
		HttpOnly: d.HTTPOnly,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}
