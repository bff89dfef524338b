package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/dto"
	apierrors "github.com/yukikurage/blog/internal/errors"
	"github.com/yukikurage/blog/internal/middleware"
	"github.com/yukikurage/blog/internal/services"
	"github.com/yukikurage/blog/internal/session"
)

// layout builds the shared page data and pops the pending flashes
func layout(c *gin.Context, sessions *session.Manager, current session.Principal, title string) dto.Layout {
	l := dto.Layout{
		Title:   title,
		Flashes: sessions.Flashes(c),
	}
	if !current.IsAnonymous() {
		user := dto.ToUserDTO(*current.User)
		l.CurrentUser = &user
	}
	return l
}

// redirectWithFlash queues message and redirects to location
func redirectWithFlash(c *gin.Context, sessions *session.Manager, location, message string) {
	sessions.Flash(c, message)
	c.Redirect(http.StatusFound, location)
}

// parseID reads a numeric path parameter. Malformed IDs are answered with 404.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.NotFound(c, "")
		return 0, false
	}
	return id, true
}

func userURL(username string) string {
	return "/user/" + url.PathEscape(username)
}

func postURL(postID uint64) string {
	return "/post/" + strconv.FormatUint(postID, 10)
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotPostAuthor),
		errors.Is(err, services.ErrNotCommentAuthor):
		apierrors.Forbidden(c, err.Error())
	default:
		log.Printf("[%s] %s %s failed: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		apierrors.InternalError(c, "")
	}
}
