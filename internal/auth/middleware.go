package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// SessionCookieName is the cookie carrying the session ID.
const SessionCookieName = "session_id"

const contextKeyUser = "current_user"

// UserLookup resolves a user ID to the user record. Satisfied by
// repo.UserRepo.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
}

// CurrentUser returns the logged-in user set by LoadUser.
// ok is false for anonymous requests.
func CurrentUser(c *gin.Context) (dom.User, bool) {
	v, exists := c.Get(contextKeyUser)
	if !exists {
		return dom.User{}, false
	}
	u, ok := v.(dom.User)
	return u, ok
}

// LoadUser returns a middleware that resolves the session cookie to a
// user and attaches it to the request context. Anonymous or stale
// sessions pass through with no user set; LoadUser never blocks a
// request on its own.
func LoadUser(sessions *Store, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}
		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			c.Next()
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}
		c.Set(contextKeyUser, u)
		c.Next()
	}
}

// RequireLogin returns a middleware that redirects anonymous requests to
// the login page. It must run after LoadUser and is applied per route
// group; public browsing routes never pass through it.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
