package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/dto"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// AuthHandler handles the login, register and logout pages.
type AuthHandler struct {
	sessions   *auth.Store
	userSvc    *service.UserService
	sessionAge int
}

// NewAuthHandler returns a new AuthHandler. sessionAge is the cookie
// max-age in seconds.
func NewAuthHandler(sessions *auth.Store, userSvc *service.UserService, sessionAge int) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, sessionAge: sessionAge}
}

// LoginPage renders the login/register form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login validates credentials and starts a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"message": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"message": "invalid username or password"})
			return
		}
		fail(c, err)
		return
	}
	h.startSession(c, user.ID)
}

// Register creates an account and starts a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"message": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"message": "username and password required"})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.HTML(http.StatusConflict, "login.html", gin.H{"message": "username already taken"})
			return
		}
		fail(c, err)
		return
	}
	h.startSession(c, user.ID)
}

// Logout ends the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, userID int64) {
	sessionID, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, h.sessionAge, "/", "", false, true) // httpOnly
	c.Redirect(http.StatusFound, "/")
}
