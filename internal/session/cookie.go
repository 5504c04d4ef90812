package session

import (
	"net/http"
	"time"
)

const CookieName = "soilgate_session"

type CookieOpts struct {
	Secure bool
	Ttl    time.Duration
}

// NewCookie wraps `token` in the cookie handed to browsers
func NewCookie(token string, opts CookieOpts) *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if opts.Ttl > 0 {
		cookie.MaxAge = int(opts.Ttl.Seconds())
	}
	return cookie
}

// NewExpiredCookie returns a cookie that makes browsers drop the session
func NewExpiredCookie(opts CookieOpts) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}

// GetToken returns the session token presented with `r`, or an empty
// string
func GetToken(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
