package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/dto"
	apierrors "github.com/yukikurage/blog/internal/errors"
	"github.com/yukikurage/blog/internal/forms"
	"github.com/yukikurage/blog/internal/middleware"
	"github.com/yukikurage/blog/internal/services"
	"github.com/yukikurage/blog/internal/session"
)

// AuthHandler coordinates registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Register shows and processes the registration form.
func (h *AuthHandler) Register(c *gin.Context, current session.Principal) {
	if !current.IsAnonymous() {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	var page dto.RegisterPage
	if c.Request.Method != http.MethodPost {
		page.Layout = layout(c, h.sessions, current, "Register")
		c.HTML(http.StatusOK, "register.html", page)
		return
	}

	page.Errors = forms.Bind(c, &page.Form)
	if page.Errors == nil {
		_, err := h.authService.Register(services.RegisterInput{
			Username: page.Form.Username,
			Email:    page.Form.Email,
			Password: page.Form.Password,
		})
		if err == nil {
			redirectWithFlash(c, h.sessions, "/login", constants.FlashRegistered)
			return
		}

		page.Errors = forms.Errors{}
		switch {
		case errors.Is(err, services.ErrDuplicateUsername):
			page.Errors.Add("username", "User with this username already exists. Please use another username.")
		case errors.Is(err, services.ErrDuplicateEmail):
			page.Errors.Add("email", "User with this email already exists. Please use a different email address.")
		default:
			respondServiceError(c, err)
			return
		}
	}

	page.Layout = layout(c, h.sessions, current, "Register")
	c.HTML(http.StatusUnprocessableEntity, "register.html", page)
}

// Login shows and processes the sign in form.
func (h *AuthHandler) Login(c *gin.Context, current session.Principal) {
	if !current.IsAnonymous() {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	var page dto.LoginPage
	if c.Request.Method != http.MethodPost {
		page.Layout = layout(c, h.sessions, current, "Sign In")
		c.HTML(http.StatusOK, "login.html", page)
		return
	}

	if page.Errors = forms.Bind(c, &page.Form); page.Errors != nil {
		page.Layout = layout(c, h.sessions, current, "Sign In")
		c.HTML(http.StatusUnprocessableEntity, "login.html", page)
		return
	}

	next := session.SafeNext(c.Query("next"))

	user, err := h.authService.Login(services.LoginInput{
		Username: page.Form.Username,
		Password: page.Form.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			redirectWithFlash(c, h.sessions, middleware.LoginURL(next), constants.FlashInvalidLogin)
			return
		}
		respondServiceError(c, err)
		return
	}

	if err := h.sessions.Login(c, user, page.Form.RememberMe); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	if next == "" {
		next = userURL(user.Username)
	}
	c.Redirect(http.StatusFound, next)
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context, current session.Principal) {
	if err := h.sessions.Logout(c); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/index")
}
