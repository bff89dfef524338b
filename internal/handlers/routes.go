package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	apierrors "github.com/yukikurage/blog/internal/errors"
	"github.com/yukikurage/blog/internal/middleware"
	"github.com/yukikurage/blog/internal/session"
	"github.com/yukikurage/blog/internal/views"
)

// Handlers is the set of route handlers served by the blog
type Handlers struct {
	Sessions *session.Manager
	Auth     *AuthHandler
	Users    *UserHandler
	Posts    *PostHandler
	Comments *CommentHandler
	Health   *HealthHandler
}

// NewRouter builds the gin engine with templates, sessions and all routes.
// extra middleware runs right after the request ID is assigned.
func NewRouter(store sessions.Store, h Handlers, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(extra...)
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(views.MustLoad())
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	h.Register(r)

	r.NoRoute(h.Sessions.Handle(func(c *gin.Context, _ session.Principal) {
		apierrors.NotFound(c, "")
	}))
	return r
}

// Register mounts every route on r
func (h Handlers) Register(r gin.IRouter) {
	if h.Health != nil {
		r.GET("/health", h.Health.Check)
	}

	handle := h.Sessions.Handle
	requireAuth := middleware.RequireAuth(h.Sessions)

	// Public routes
	getPost(r, "/", handle(h.Posts.Index))
	getPost(r, "/index", handle(h.Posts.Index))
	getPost(r, "/register", handle(h.Auth.Register))
	getPost(r, "/login", handle(h.Auth.Login))
	r.GET("/logout", handle(h.Auth.Logout))
	getPost(r, "/post/:post_id", handle(h.Posts.ShowPost))

	// Routes for logged-in users
	protected := r.Group("")
	protected.Use(requireAuth)
	{
		getPost(protected, "/user/:username", handle(h.Users.Profile))
		getPost(protected, "/edit_profile", handle(h.Users.EditProfile))
		getPost(protected, "/edit_post/:post_id", handle(h.Posts.EditPost))
		getPost(protected, "/edit_comment/:comment_id", handle(h.Comments.EditComment))
	}
}

func getPost(r gin.IRoutes, path string, handler gin.HandlerFunc) {
	r.GET(path, handler)
	r.POST(path, handler)
}
