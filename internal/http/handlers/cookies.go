package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/notehub/domain"
)

// Cookie names consumed and emitted by the auth endpoints.
const (
	CookieSessionID    = "sessionId"
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// setSessionCookies emits the three auth cookies. The access-token cookie
// lives until the access expiry; the session id and refresh token live until
// the refresh expiry. Secure/SameSite attributes are deployment concerns and
// left at their defaults here.
func setSessionCookies(c *gin.Context, session *domain.Session) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieSessionID,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.RefreshExpiresAt,
		HttpOnly: true,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieAccessToken,
		Value:    session.AccessToken,
		Path:     "/",
		Expires:  session.AccessExpiresAt,
		HttpOnly: true,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieRefreshToken,
		Value:    session.RefreshToken,
		Path:     "/",
		Expires:  session.RefreshExpiresAt,
		HttpOnly: true,
	})
}

// clearSessionCookies empties all three cookies with an immediate expiry.
func clearSessionCookies(c *gin.Context) {
	for _, name := range []string{CookieSessionID, CookieAccessToken, CookieRefreshToken} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}
