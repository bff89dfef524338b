// Package session tracks the logged-in user across requests on top of
// gin-contrib/sessions.
package session

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/models"
)

// Principal is the user a request acts as. The zero value is anonymous.
type Principal struct {
	User *models.User
}

// Anonymous is the principal of requests without a valid login
var Anonymous = Principal{}

// IsAnonymous reports whether no user is logged in
func (p Principal) IsAnonymous() bool {
	return p.User == nil
}

// UserID returns the ID of the logged-in user, or 0
func (p Principal) UserID() uint64 {
	if p.User == nil {
		return 0
	}
	return p.User.ID
}

// UserFinder loads users by ID
type UserFinder interface {
	GetUser(id uint64) (*models.User, error)
}

// HandlerFunc is a gin handler that receives the resolved principal
type HandlerFunc func(c *gin.Context, current Principal)

// Manager resolves and updates the login state stored in the session
type Manager struct {
	users         UserFinder
	rememberFor   time.Duration
	sessionFor    time.Duration
	secureCookies bool
}

// NewManager creates a Manager. rememberFor is the cookie lifetime used for
// "remember me" logins.
func NewManager(users UserFinder, rememberFor time.Duration, secureCookies bool) *Manager {
	return &Manager{
		users:         users,
		rememberFor:   rememberFor,
		secureCookies: secureCookies,
	}
}

// WithSessionLifetime sets the MaxAge of sessions that are not remembered.
// Zero keeps them as browser-session cookies, which server-side stores
// treat as a deletion.
func (m *Manager) WithSessionLifetime(d time.Duration) *Manager {
	m.sessionFor = d
	return m
}

// Current returns the principal of the request. It never fails: a missing,
// malformed or stale session resolves to Anonymous.
func (m *Manager) Current(c *gin.Context) Principal {
	if cached, ok := c.Get(constants.ContextKeyPrincipal); ok {
		if p, ok := cached.(Principal); ok {
			return p
		}
	}

	p := m.resolve(c)
	setPrincipal(c, p)
	return p
}

// setPrincipal caches p for the rest of the request. The user is also stored
// on its own for error pages, which render without a principal.
func setPrincipal(c *gin.Context, p Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
	if p.IsAnonymous() {
		c.Set(constants.ContextKeyCurrentUser, nil)
		return
	}
	c.Set(constants.ContextKeyCurrentUser, p.User)
}

func (m *Manager) resolve(c *gin.Context) Principal {
	userID, ok := toUserID(sessions.Default(c).Get(constants.ContextKeyUserID))
	if !ok {
		return Anonymous
	}

	user, err := m.users.GetUser(userID)
	if err != nil {
		return Anonymous
	}
	return Principal{User: user}
}

// Handle adapts a HandlerFunc to gin, passing it the current principal
func (m *Manager) Handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c, m.Current(c))
	}
}

// Login marks user as logged in for this session. A remembered login
// survives browser restarts; otherwise the cookie ends with the browser session.
func (m *Manager) Login(c *gin.Context, user *models.User, remember bool) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyUserID, user.ID)
	session.Set(constants.SessionKeyRemember, remember)

	if err := m.save(session); err != nil {
		return err
	}

	setPrincipal(c, Principal{User: user})
	return nil
}

// Logout forgets the logged-in user
func (m *Manager) Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(m.options(-1))

	if err := session.Save(); err != nil {
		return err
	}

	setPrincipal(c, Anonymous)
	return nil
}

// Flash queues a message for the next rendered page
func (m *Manager) Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := m.save(session); err != nil {
		log.Printf("Failed to save flash message: %v", err)
	}
}

// Flashes pops the queued messages
func (m *Manager) Flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := m.save(session); err != nil {
		log.Printf("Failed to clear flash messages: %v", err)
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// save writes the session with a lifetime matching the remember-me choice
// made at login, so later writes do not shorten or extend it.
func (m *Manager) save(session sessions.Session) error {
	maxAge := int(m.sessionFor.Seconds())
	if remember, _ := session.Get(constants.SessionKeyRemember).(bool); remember {
		maxAge = int(m.rememberFor.Seconds())
	}
	session.Options(m.options(maxAge))
	return session.Save()
}

func (m *Manager) options(maxAge int) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secureCookies,
		SameSite: 2, // SameSite=Lax
	}
}

// SafeNext returns next if it is a relative path on this site, or "" otherwise
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return ""
	}
	// Browsers treat "//host" and "/\host" as protocol-relative
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return next
}

func toUserID(v interface{}) (uint64, bool) {
	switch id := v.(type) {
	case uint64:
		return id, id != 0
	case uint:
		return uint64(id), id != 0
	case int:
		if id <= 0 {
			return 0, false
		}
		return uint64(id), true
	case int64:
		if id <= 0 {
			return 0, false
		}
		return uint64(id), true
	default:
		return 0, false
	}
}
